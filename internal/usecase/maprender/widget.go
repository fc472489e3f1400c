package maprender

import "github.com/manara-web/internal/domain"

// ViewOptions - initial view of a map widget
type ViewOptions struct {
	Center          domain.Coordinate `json:"center"`
	Zoom            int               `json:"zoom"`
	ScrollWheelZoom bool              `json:"scrollWheelZoom"`
	DoubleClickZoom bool              `json:"doubleClickZoom"`
}

// TileLayer - base map tiles
type TileLayer struct {
	URLTemplate string `json:"url"`
	Attribution string `json:"attribution"`
}

// Icon - marker icon drawn from HTML
type Icon struct {
	HTML        string `json:"html"`
	ClassName   string `json:"className"`
	Size        [2]int `json:"iconSize"`
	Anchor      [2]int `json:"iconAnchor"`
	PopupAnchor [2]int `json:"popupAnchor"`
}

// MarkerSpec - one mosque marker to place
type MarkerSpec struct {
	MosqueID string            `json:"mosqueId"`
	Title    string            `json:"title"`
	Position domain.Coordinate `json:"position"`
	Icon     Icon              `json:"-"`
}

// Widget is a live map instance attached to a surface.
type Widget interface {
	// ID is the handle recorded on the mounting surface.
	ID() string
	AddTileLayer(layer TileLayer) error
	AddMarker(spec MarkerSpec) (Marker, error)
	// Remove releases the widget; markers must have been removed before.
	Remove() error
	// MarshalJSON renders the client-side description of the widget.
	MarshalJSON() ([]byte, error)
}

// Marker is one placed marker.
type Marker interface {
	MosqueID() string
	Remove() error
}

// WidgetFactory constructs widgets on a surface.
type WidgetFactory interface {
	NewWidget(surfaceID string, opts ViewOptions) (Widget, error)
}

// MosqueIcon is the round mosque badge used for every marker.
var MosqueIcon = Icon{
	HTML: `<div class="mosque-marker"><svg width="20" height="20" viewBox="0 0 24 24" fill="currentColor">` +
		`<path d="M12 3L4 9v12h16V9l-8-6zM6 19v-9l6-4.5 6 4.5v9H6z"/><path d="M9 14h2v5H9zM13 14h2v5h-2z"/></svg></div>`,
	ClassName:   "custom-mosque-icon",
	Size:        [2]int{40, 40},
	Anchor:      [2]int{20, 40},
	PopupAnchor: [2]int{0, -40},
}
