// Package leaflet keeps the server-side model of a Leaflet map: the widget the
// renderer builds is serialized and drawn by web/static/map.js.
package leaflet

import (
	"encoding/json"
	stderrors "errors"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/pkg/utils"
	"github.com/manara-web/internal/usecase/maprender"
)

const (
	MinZoom = 0
	MaxZoom = 19
)

// ErrRemoved is returned when a removed map or marker is used again.
var ErrRemoved = stderrors.New("leaflet: layer already removed")

// Factory stamps every map with an increasing id, like Leaflet does on its container.
type Factory struct {
	logger *zap.Logger

	mu   sync.Mutex
	next int
}

func NewFactory(logger *zap.Logger) *Factory {
	return &Factory{logger: logger}
}

func (f *Factory) NewWidget(surfaceID string, opts maprender.ViewOptions) (maprender.Widget, error) {
	if strings.TrimSpace(surfaceID) == "" {
		return nil, errors.ErrMapInit.WithMessage("Map container not found")
	}
	if opts.Zoom < MinZoom || opts.Zoom > MaxZoom {
		return nil, errors.ErrMapInit.WithMessage("Zoom %d out of range [%d, %d]", opts.Zoom, MinZoom, MaxZoom)
	}
	if !utils.ValidateCoordinates(opts.Center.Lat, opts.Center.Lon) {
		return nil, errors.ErrMapInit.WithMessage("Invalid map center")
	}

	f.mu.Lock()
	f.next++
	id := "leaflet-" + strconv.Itoa(f.next)
	f.mu.Unlock()

	f.logger.Debug("Leaflet map created", zap.String("id", id), zap.String("container", surfaceID))

	return &Map{
		id:        id,
		container: surfaceID,
		view:      opts,
	}, nil
}

// Map - one Leaflet map instance
type Map struct {
	id        string
	container string
	view      maprender.ViewOptions

	mu       sync.Mutex
	tiles    []maprender.TileLayer
	markers  []*Marker
	nextLeaf int
	removed  bool
}

func (m *Map) ID() string {
	return m.id
}

func (m *Map) AddTileLayer(layer maprender.TileLayer) error {
	for _, p := range []string{"{z}", "{x}", "{y}"} {
		if !strings.Contains(layer.URLTemplate, p) {
			return errors.ErrMapInit.WithMessage("Tile URL template lacks %s", p)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removed {
		return ErrRemoved
	}
	m.tiles = append(m.tiles, layer)
	return nil
}

func (m *Map) AddMarker(spec maprender.MarkerSpec) (maprender.Marker, error) {
	if spec.MosqueID == "" {
		return nil, errors.ErrMapInit.WithMessage("Marker without mosque id")
	}
	if !utils.ValidateCoordinates(spec.Position.Lat, spec.Position.Lon) {
		return nil, errors.ErrMapInit.WithMessage("Invalid marker position for %s", spec.MosqueID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removed {
		return nil, ErrRemoved
	}
	m.nextLeaf++
	marker := &Marker{id: m.nextLeaf, spec: spec, owner: m}
	m.markers = append(m.markers, marker)
	return marker, nil
}

// Remove drops the map together with any layer still on it.
func (m *Map) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removed {
		return ErrRemoved
	}
	for _, mk := range m.markers {
		mk.removed = true
	}
	m.markers = nil
	m.tiles = nil
	m.removed = true
	return nil
}

// Markers returns the mosque ids of the live markers in insertion order.
func (m *Map) Markers() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.markers))
	for _, mk := range m.markers {
		ids = append(ids, mk.spec.MosqueID)
	}
	return ids
}

type markerJSON struct {
	ID       int               `json:"id"`
	MosqueID string            `json:"mosqueId"`
	Title    string            `json:"title"`
	Position domain.Coordinate `json:"position"`
	Icon     maprender.Icon    `json:"icon"`
}

type mapJSON struct {
	ID        string                `json:"id"`
	Container string                `json:"container"`
	View      maprender.ViewOptions `json:"view"`
	Tiles     []maprender.TileLayer `json:"tiles"`
	Markers   []markerJSON          `json:"markers"`
}

func (m *Map) MarshalJSON() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removed {
		return nil, ErrRemoved
	}

	out := mapJSON{
		ID:        m.id,
		Container: m.container,
		View:      m.view,
		Tiles:     append([]maprender.TileLayer{}, m.tiles...),
		Markers:   make([]markerJSON, 0, len(m.markers)),
	}
	for _, mk := range m.markers {
		out.Markers = append(out.Markers, markerJSON{
			ID:       mk.id,
			MosqueID: mk.spec.MosqueID,
			Title:    mk.spec.Title,
			Position: mk.spec.Position,
			Icon:     mk.spec.Icon,
		})
	}
	return json.Marshal(out)
}

// Marker - a mosque marker on a Map
type Marker struct {
	id      int
	spec    maprender.MarkerSpec
	owner   *Map
	removed bool
}

func (mk *Marker) MosqueID() string {
	return mk.spec.MosqueID
}

func (mk *Marker) Remove() error {
	m := mk.owner
	m.mu.Lock()
	defer m.mu.Unlock()
	if mk.removed {
		return ErrRemoved
	}
	for i, other := range m.markers {
		if other == mk {
			m.markers = append(m.markers[:i], m.markers[i+1:]...)
			break
		}
	}
	mk.removed = true
	return nil
}
