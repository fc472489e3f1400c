// Package maprender owns the lifecycle of the mosque map widget: it builds the
// widget once per data set, places markers, tracks the selected mosque and
// tears everything down in a fixed order.
package maprender

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/manara-web/internal/config"
	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/pkg/metrics"
)

// Status - lifecycle state of the renderer
type Status int

const (
	StatusUninitialized Status = iota
	StatusInitializing
	StatusReady
	StatusDisposed
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusInitializing:
		return "initializing"
	case StatusReady:
		return "ready"
	case StatusDisposed:
		return "disposed"
	}
	return "unknown"
}

// Config - fixed parameters of every widget the renderer builds
type Config struct {
	View  ViewOptions
	Tiles TileLayer
	Icon  Icon
}

// DefaultConfig centers on Syria with wheel and double-click zoom off so the map
// does not capture page scrolling.
func DefaultConfig() Config {
	return Config{
		View: ViewOptions{
			Center:          domain.Coordinate{Lat: 34.8021, Lon: 38.9968},
			Zoom:            7,
			ScrollWheelZoom: false,
			DoubleClickZoom: false,
		},
		Tiles: TileLayer{
			URLTemplate: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution: "© OpenStreetMap contributors",
		},
		Icon: MosqueIcon,
	}
}

// ConfigFrom overrides the defaults with the configured view and tiles.
func ConfigFrom(m config.MapConfig) Config {
	cfg := DefaultConfig()
	cfg.View.Center = domain.Coordinate{Lat: m.CenterLat, Lon: m.CenterLon}
	if m.Zoom > 0 {
		cfg.View.Zoom = m.Zoom
	}
	if m.TileURL != "" {
		cfg.Tiles.URLTemplate = m.TileURL
	}
	if m.TileAttribution != "" {
		cfg.Tiles.Attribution = m.TileAttribution
	}
	return cfg
}

// Scene - what the browser needs to draw the current map
type Scene struct {
	SurfaceID string          `json:"surfaceId"`
	Status    string          `json:"status"`
	Widget    json.RawMessage `json:"widget,omitempty"`
	Selected  *domain.Mosque  `json:"selected,omitempty"`
}

// Renderer - exclusive owner of one map widget on one surface
type Renderer struct {
	factory WidgetFactory
	surface *Surface
	cfg     Config
	logger  *zap.Logger

	mu          sync.Mutex
	status      Status
	widget      Widget
	markers     []Marker
	byMosque    map[string]domain.Mosque
	fingerprint string
	selected    *domain.Mosque
}

func NewRenderer(factory WidgetFactory, surface *Surface, cfg Config, logger *zap.Logger) *Renderer {
	return &Renderer{
		factory: factory,
		surface: surface,
		cfg:     cfg,
		logger:  logger,
		status:  StatusUninitialized,
	}
}

func (r *Renderer) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// MarkerCount returns the number of live markers.
func (r *Renderer) MarkerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.markers)
}

// Mount builds the widget for mosques. It is a no-op for an empty sequence,
// while a widget is live, or when the surface already carries a widget.
// Initialization failures are logged and leave the renderer Uninitialized.
func (r *Renderer) Mount(mosques []domain.Mosque) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mountLocked(mosques)
}

// Unmount releases markers, then the widget, then clears the surface.
func (r *Renderer) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unmountLocked()
}

// Sync brings the widget in line with mosques, rebuilding it when the marker set changed.
func (r *Renderer) Sync(mosques []domain.Mosque) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(mosques) == 0 {
		r.unmountLocked()
		return
	}

	if r.status == StatusReady {
		if fingerprint(mosques) == r.fingerprint {
			return
		}
		r.logger.Debug("Map data changed, rebuilding widget", zap.String("surface", r.surface.ID()))

		var keep string
		if r.selected != nil {
			keep = r.selected.ID
		}
		r.unmountLocked()
		r.mountLocked(mosques)
		if keep != "" {
			if m, ok := r.byMosque[keep]; ok {
				r.selected = &m
			}
		}
		return
	}

	r.mountLocked(mosques)
}

// Select is a marker click: the mosque becomes the only selection.
func (r *Renderer) Select(mosqueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusReady {
		return errors.ErrUnknownMarker.WithMessage("Map is not ready")
	}
	m, ok := r.byMosque[mosqueID]
	if !ok {
		return errors.ErrUnknownMarker
	}
	r.selected = &m
	return nil
}

// Dismiss clears the selection.
func (r *Renderer) Dismiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = nil
}

// Selected returns a copy of the selected mosque, or nil.
func (r *Renderer) Selected() *domain.Mosque {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selected == nil {
		return nil
	}
	m := *r.selected
	return &m
}

func (r *Renderer) Scene() Scene {
	r.mu.Lock()
	defer r.mu.Unlock()

	scene := Scene{
		SurfaceID: r.surface.ID(),
		Status:    r.status.String(),
	}
	if r.selected != nil {
		m := *r.selected
		scene.Selected = &m
	}
	if r.status == StatusReady && r.widget != nil {
		raw, err := r.widget.MarshalJSON()
		if err != nil {
			r.logger.Warn("Failed to describe map widget", zap.Error(err))
			return scene
		}
		scene.Widget = raw
	}
	return scene
}

func (r *Renderer) mountLocked(mosques []domain.Mosque) {
	if len(mosques) == 0 {
		return
	}
	if r.status == StatusInitializing || r.status == StatusReady {
		return
	}
	if handle, ok := r.surface.AttachedWidget(); ok {
		r.logger.Debug("Surface already carries a widget, skipping initialization",
			zap.String("surface", r.surface.ID()),
			zap.String("widget", handle))
		return
	}

	r.status = StatusInitializing
	if err := r.initialize(mosques); err != nil {
		metrics.MapInitFailuresTotal.Inc()
		r.logger.Error("Error initializing map",
			zap.String("surface", r.surface.ID()),
			zap.Error(err))
		r.status = StatusUninitialized
		return
	}

	r.status = StatusReady
	metrics.MapWidgetsActive.Inc()
	r.logger.Debug("Map ready",
		zap.String("surface", r.surface.ID()),
		zap.Int("markers", len(r.markers)))
}

// initialize acquires the widget and its markers; on any failure, including a
// panic inside the widget, everything acquired so far is released again.
func (r *Renderer) initialize(mosques []domain.Mosque) (err error) {
	widget, err := r.factory.NewWidget(r.surface.ID(), r.cfg.View)
	if err != nil {
		return errors.ErrMapInit.Wrap(err)
	}
	r.surface.attach(widget.ID())

	var markers []Marker
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.ErrMapInit.Wrap(fmt.Errorf("panic: %v", rec))
		}
		if err != nil {
			releaseAll(markers, widget, r.logger)
			r.surface.detach()
		}
	}()

	if err = widget.AddTileLayer(r.cfg.Tiles); err != nil {
		return errors.ErrMapInit.Wrap(err)
	}

	index := make(map[string]domain.Mosque, len(mosques))
	for _, m := range mosques {
		if !m.HasValidCoordinate() {
			r.logger.Debug("Mosque without valid coordinate, no marker", zap.String("id", m.ID))
			continue
		}
		marker, addErr := widget.AddMarker(MarkerSpec{
			MosqueID: m.ID,
			Title:    m.Name,
			Position: m.Coordinate(),
			Icon:     r.cfg.Icon,
		})
		if addErr != nil {
			err = errors.ErrMapInit.Wrap(fmt.Errorf("marker %s: %w", m.ID, addErr))
			return err
		}
		markers = append(markers, marker)
		index[m.ID] = m
	}

	r.widget = widget
	r.markers = markers
	r.byMosque = index
	r.fingerprint = fingerprint(mosques)
	return nil
}

func (r *Renderer) unmountLocked() {
	if r.status != StatusReady {
		return
	}

	releaseAll(r.markers, r.widget, r.logger)
	r.surface.detach()

	r.widget = nil
	r.markers = nil
	r.byMosque = nil
	r.fingerprint = ""
	r.selected = nil
	r.status = StatusDisposed
	metrics.MapWidgetsActive.Dec()
}

func releaseAll(markers []Marker, widget Widget, logger *zap.Logger) {
	for _, m := range markers {
		if m == nil {
			continue
		}
		if err := m.Remove(); err != nil {
			logger.Warn("Failed to remove marker", zap.String("mosque_id", m.MosqueID()), zap.Error(err))
		}
	}
	if widget != nil {
		if err := widget.Remove(); err != nil {
			logger.Warn("Failed to remove map widget", zap.String("widget", widget.ID()), zap.Error(err))
		}
	}
}

// fingerprint identifies the marker set a mosque sequence produces.
func fingerprint(mosques []domain.Mosque) string {
	var b strings.Builder
	for _, m := range mosques {
		if !m.HasValidCoordinate() {
			continue
		}
		b.WriteString(m.ID)
		b.WriteByte('|')
		b.WriteString(m.Name)
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(m.Latitude, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(m.Longitude, 'f', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}
