package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/manara-web/internal/delivery/http/middleware"
	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/pkg/utils"
	"github.com/manara-web/internal/pkg/validator"
	"github.com/manara-web/internal/usecase"
	"github.com/manara-web/internal/usecase/dto"
)

// SessionCounter reports live browser sessions.
type SessionCounter interface {
	Count() int
}

// MosqueHandler - JSON API over the mosque data
type MosqueHandler struct {
	mosqueUC *usecase.MosqueUseCase
	sessions SessionCounter
	logger   *zap.Logger
}

func NewMosqueHandler(mosqueUC *usecase.MosqueUseCase, sessions SessionCounter, logger *zap.Logger) *MosqueHandler {
	return &MosqueHandler{
		mosqueUC: mosqueUC,
		sessions: sessions,
		logger:   logger,
	}
}

// ListMosques godoc
// @Summary List mosques
// @Description Returns the mosques matching an optional name/description query and city. Data is always fetched fresh from the mosque service.
// @Tags Mosques
// @Produce json
// @Param q query string false "Text contained in the mosque name or description"
// @Param city query int false "City id (0 Aleppo, 1 Damascus, 2 Homs)"
// @Success 200 {object} utils.SuccessResponse{data=dto.MosqueListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/mosques [get]
func (h *MosqueHandler) ListMosques(c *fiber.Ctx) error {
	req := dto.MosqueListRequest{
		Query: c.Query("q"),
		City:  c.Query("city"),
	}
	if err := validator.ValidateRequest(&req); err != nil {
		return utils.SendError(c, err)
	}

	filter := domain.MosqueFilter{}.WithQuery(req.Query)
	if req.City != "" {
		id, err := strconv.Atoi(req.City)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("city must be an integer id"))
		}
		filter = filter.WithCity(&id)
	}

	mosques, err := h.mosqueUC.ListMosques(c.UserContext(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.MosqueListResponse{
		Mosques: mosques,
		Filter:  filter,
		Total:   len(mosques),
	}, &utils.Meta{Total: len(mosques)})
}

// GetMosque godoc
// @Summary Get a mosque
// @Description Returns one mosque with its donation campaigns and their progress.
// @Tags Mosques
// @Produce json
// @Param id path string true "Mosque id"
// @Success 200 {object} utils.SuccessResponse{data=dto.MosqueResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/mosques/{id} [get]
func (h *MosqueHandler) GetMosque(c *fiber.Ctx) error {
	req := dto.MosqueIDRequest{ID: c.Params("id")}
	if err := validator.ValidateRequest(&req); err != nil {
		return utils.SendError(c, err)
	}

	mosque, err := h.mosqueUC.GetMosque(c.UserContext(), req.ID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.MosqueResponse{
		Mosque:    mosque,
		Donations: dto.NewDonationProgressList(mosque.Donations),
	}, nil)
}

// MapScene godoc
// @Summary Map scene of the current session
// @Description Returns the widget description (view, tiles, markers) and the selected mosque drawn by the browser map.
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapSceneResponse}
// @Router /api/v1/session/map [get]
func (h *MosqueHandler) MapScene(c *fiber.Ctx) error {
	mode, scene := middleware.CurrentSession(c).Scene(c.UserContext())
	c.Set(fiber.HeaderCacheControl, "no-store")
	return utils.SendSuccess(c, dto.MapSceneResponse{
		ViewMode: string(mode),
		Scene:    scene,
	}, nil)
}

// Health godoc
// @Summary Health check
// @Description Probes the mosque service with a HEAD request.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *MosqueHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:   "healthy",
		Upstream: "ok",
		Sessions: h.sessions.Count(),
	}
	if err := h.mosqueUC.Health(c.UserContext()); err != nil {
		resp.Status = "degraded"
		resp.Upstream = "unreachable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
