package maprender

import "sync"

// DefaultSurfaceID is the mounting surface of the home page map.
const DefaultSurfaceID = "mosque-map"

// Surface is the region a widget is attached to. It records the handle of
// the attached widget so that a second widget is never built on top of a live one.
type Surface struct {
	id string

	mu       sync.Mutex
	widgetID string
}

func NewSurface(id string) *Surface {
	return &Surface{id: id}
}

func (s *Surface) ID() string {
	return s.id
}

// AttachedWidget returns the handle of the live widget, if any.
func (s *Surface) AttachedWidget() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.widgetID, s.widgetID != ""
}

func (s *Surface) attach(widgetID string) {
	s.mu.Lock()
	s.widgetID = widgetID
	s.mu.Unlock()
}

func (s *Surface) detach() {
	s.mu.Lock()
	s.widgetID = ""
	s.mu.Unlock()
}
