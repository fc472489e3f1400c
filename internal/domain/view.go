package domain

// ViewMode - how the home page shows mosques
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewMap  ViewMode = "map"
)

// ParseViewMode accepts "list" and "map".
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ViewList, ViewMap:
		return ViewMode(s), true
	}
	return "", false
}

// ViewState - the serializable part of a browser session
type ViewState struct {
	Filter           MosqueFilter `json:"filter"`
	ViewMode         ViewMode     `json:"view_mode"`
	SelectedMosqueID string       `json:"selected_mosque_id,omitempty"`
}
