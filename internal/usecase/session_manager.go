package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/domain/repository"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/pkg/metrics"
	"github.com/manara-web/internal/usecase/maprender"
)

// HomeView - state needed to render the home page once
type HomeView struct {
	Snapshot Snapshot
	ViewMode domain.ViewMode
	Selected *domain.Mosque
}

// Session - the state of one browser: filter, view mode and the map widget.
// The session lock is never held across a fetch.
type Session struct {
	id       string
	search   *SearchController
	renderer *maprender.Renderer
	store    repository.ViewStateRepository
	ttl      time.Duration
	logger   *zap.Logger

	mu               sync.Mutex
	viewMode         domain.ViewMode
	pendingSelection string
}

func (s *Session) ID() string {
	return s.id
}

// View loads the current filter if needed and brings the map up to date.
func (s *Session) View(ctx context.Context) HomeView {
	s.search.Load(ctx)
	return s.refresh(ctx, false)
}

// Retry refetches the current filter.
func (s *Session) Retry(ctx context.Context) HomeView {
	s.search.Reload(ctx)
	return s.refresh(ctx, false)
}

func (s *Session) Search(ctx context.Context, query string) HomeView {
	s.search.SetQuery(ctx, strings.Clone(query))
	return s.refresh(ctx, true)
}

func (s *Session) ToggleCity(ctx context.Context, cityID int) HomeView {
	s.search.ToggleCity(ctx, cityID)
	return s.refresh(ctx, true)
}

func (s *Session) ClearFilters(ctx context.Context) HomeView {
	s.search.Clear(ctx)
	return s.refresh(ctx, true)
}

func (s *Session) SetViewMode(ctx context.Context, mode domain.ViewMode) HomeView {
	s.mu.Lock()
	s.viewMode = mode
	s.mu.Unlock()

	s.search.Load(ctx)
	return s.refresh(ctx, true)
}

// SelectMarker handles a marker click on the map.
func (s *Session) SelectMarker(ctx context.Context, mosqueID string) (HomeView, error) {
	s.search.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.viewMode != domain.ViewMap {
		return s.viewLocked(), errors.ErrUnknownMarker.WithMessage("Map is not shown")
	}
	s.syncLocked()
	if err := s.renderer.Select(mosqueID); err != nil {
		return s.viewLocked(), err
	}
	s.persistLocked(ctx)
	return s.viewLocked(), nil
}

func (s *Session) DismissSelection(ctx context.Context) HomeView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingSelection = ""
	s.renderer.Dismiss()
	s.persistLocked(ctx)
	return s.viewLocked()
}

// Scene returns the view mode and the map scene for the browser.
func (s *Session) Scene(ctx context.Context) (domain.ViewMode, maprender.Scene) {
	view := s.View(ctx)
	return view.ViewMode, s.renderer.Scene()
}

func (s *Session) refresh(ctx context.Context, persist bool) HomeView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncLocked()
	if persist {
		s.persistLocked(ctx)
	}
	return s.viewLocked()
}

// syncLocked mounts the map only in map mode; leaving it unmounts the widget.
func (s *Session) syncLocked() {
	if s.viewMode != domain.ViewMap {
		s.renderer.Unmount()
		return
	}

	snap := s.search.Snapshot()
	if snap.Err != nil {
		s.renderer.Sync(nil)
		return
	}
	s.renderer.Sync(snap.Mosques)

	if s.pendingSelection != "" && s.renderer.Status() == maprender.StatusReady {
		if err := s.renderer.Select(s.pendingSelection); err != nil {
			s.logger.Debug("Restored selection has no marker", zap.String("mosque_id", s.pendingSelection))
		}
		s.pendingSelection = ""
	}
}

func (s *Session) viewLocked() HomeView {
	return HomeView{
		Snapshot: s.search.Snapshot(),
		ViewMode: s.viewMode,
		Selected: s.renderer.Selected(),
	}
}

func (s *Session) persistLocked(ctx context.Context) {
	state := domain.ViewState{
		Filter:   s.search.Filter(),
		ViewMode: s.viewMode,
	}
	if sel := s.renderer.Selected(); sel != nil {
		state.SelectedMosqueID = sel.ID
	} else if s.pendingSelection != "" {
		state.SelectedMosqueID = s.pendingSelection
	}

	if err := s.store.Save(ctx, s.id, state, s.ttl); err != nil {
		s.logger.Warn("Failed to persist view state", zap.String("session", s.id), zap.Error(err))
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer.Unmount()
}

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) {
		m.now = now
	}
}

// SessionManager keeps live sessions in memory and their view state in a ViewStateRepository.
type SessionManager struct {
	lister  MosqueLister
	factory maprender.WidgetFactory
	mapCfg  maprender.Config
	store   repository.ViewStateRepository
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

func NewSessionManager(
	lister MosqueLister,
	factory maprender.WidgetFactory,
	mapCfg maprender.Config,
	store repository.ViewStateRepository,
	ttl time.Duration,
	logger *zap.Logger,
	opts ...SessionOption,
) *SessionManager {
	m := &SessionManager{
		lister:   lister,
		factory:  factory,
		mapCfg:   mapCfg,
		store:    store,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Acquire returns the session for id, restoring it from the store or starting a
// new one. Ids that are not UUIDs are replaced; callers compare Session.ID with
// the id they passed to know whether to issue a new cookie.
func (m *SessionManager) Acquire(ctx context.Context, id string) *Session {
	if _, err := uuid.Parse(id); err != nil {
		id = ""
	}
	// The id is kept as a map key, so it must not alias a request buffer.
	id = strings.Clone(id)

	if id != "" {
		if s := m.touch(id); s != nil {
			return s
		}
	}

	var state *domain.ViewState
	if id != "" {
		restored, err := m.store.Get(ctx, id)
		if err != nil {
			m.logger.Warn("Failed to restore view state", zap.String("session", id), zap.Error(err))
		}
		state = restored
	} else {
		id = uuid.NewString()
	}

	s := m.newSession(id, state)

	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok := m.sessions[id]; ok {
		entry.lastSeen = m.now()
		return entry.session
	}
	m.sessions[id] = &sessionEntry{session: s, lastSeen: m.now()}
	metrics.SessionsActive.Inc()

	m.logger.Debug("Session started", zap.String("session", id), zap.Bool("restored", state != nil))
	return s
}

func (m *SessionManager) touch(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[id]
	if !ok {
		return nil
	}
	entry.lastSeen = m.now()
	return entry.session
}

func (m *SessionManager) newSession(id string, state *domain.ViewState) *Session {
	filter := domain.MosqueFilter{}
	mode := domain.ViewList
	var selection string
	if state != nil {
		filter = domain.MosqueFilter{}.WithQuery(state.Filter.Query).WithCity(state.Filter.CityID)
		if parsed, ok := domain.ParseViewMode(string(state.ViewMode)); ok {
			mode = parsed
		}
		selection = state.SelectedMosqueID
	}

	logger := m.logger.With(zap.String("session", id))
	return &Session{
		id:               id,
		search:           NewSearchController(m.lister, filter, logger),
		renderer:         maprender.NewRenderer(m.factory, maprender.NewSurface(maprender.DefaultSurfaceID), m.mapCfg, logger),
		store:            m.store,
		ttl:              m.ttl,
		logger:           logger,
		viewMode:         mode,
		pendingSelection: selection,
	}
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle drops sessions not seen for longer than the TTL and disposes their maps.
// Stored view state outlives eviction and is restored on the next request.
func (m *SessionManager) EvictIdle() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	var idle []*Session
	for id, entry := range m.sessions {
		if entry.lastSeen.Before(cutoff) {
			idle = append(idle, entry.session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range idle {
		s.close()
	}
	if len(idle) > 0 {
		metrics.SessionsActive.Sub(float64(len(idle)))
		m.logger.Info("Evicted idle sessions", zap.Int("count", len(idle)))
	}
	return len(idle)
}

// CloseAll disposes every session, used on shutdown.
func (m *SessionManager) CloseAll() {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, entry := range m.sessions {
		all = append(all, entry.session)
	}
	m.sessions = make(map[string]*sessionEntry)
	m.mu.Unlock()

	for _, s := range all {
		s.close()
	}
	metrics.SessionsActive.Sub(float64(len(all)))
}
