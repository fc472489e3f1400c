package dto

// MosqueListRequest - query of GET /api/v1/mosques
type MosqueListRequest struct {
	Query string `query:"q" json:"q" validate:"max=200"`
	City  string `query:"city" json:"city" validate:"omitempty,numeric"`
}

// SearchRequest - search form submission
type SearchRequest struct {
	Query string `form:"q" json:"q" validate:"max=200"`
}

// CityToggleRequest - city filter button
type CityToggleRequest struct {
	CityID int `json:"city_id" validate:"min=0"`
}

// ViewModeRequest - list/map toggle
type ViewModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=list map"`
}

// MosqueIDRequest - path parameter naming one mosque
type MosqueIDRequest struct {
	ID string `json:"id" validate:"required,max=64,excludesall=/?#"`
}
