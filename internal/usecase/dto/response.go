package dto

import (
	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/usecase/maprender"
)

// MosqueListResponse - body of GET /api/v1/mosques
type MosqueListResponse struct {
	Mosques []domain.Mosque     `json:"mosques"`
	Filter  domain.MosqueFilter `json:"filter"`
	Total   int                 `json:"total"`
}

// MosqueResponse - body of GET /api/v1/mosques/{id}
type MosqueResponse struct {
	Mosque    *domain.Mosque         `json:"mosque"`
	Donations []DonationProgressView `json:"donations"`
}

// MapSceneResponse - body of GET /api/v1/session/map
type MapSceneResponse struct {
	ViewMode string          `json:"view_mode"`
	Scene    maprender.Scene `json:"scene"`
}

// HealthResponse - body of GET /api/v1/health
type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Sessions int    `json:"sessions"`
}
