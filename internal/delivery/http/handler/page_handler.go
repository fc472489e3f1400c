package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/manara-web/internal/delivery/http/middleware"
	"github.com/manara-web/internal/delivery/http/view"
	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/pkg/validator"
	"github.com/manara-web/internal/usecase"
	"github.com/manara-web/internal/usecase/dto"
)

const (
	siteTitle = "منارة - تطبيق تبرعات المساجد"

	msgListFetchFailed   = "فشل في تحميل بيانات المساجد. يرجى المحاولة مرة أخرى."
	msgMosqueFetchFailed = "فشل في تحميل بيانات المسجد. يرجى المحاولة مرة أخرى."
	msgMosqueNotFound    = "المسجد غير موجود"
	msgInvalidRequest    = "طلب غير صالح"
)

// PageHandler - server-rendered pages and the form actions posted from them
type PageHandler struct {
	mosqueUC *usecase.MosqueUseCase
	views    *view.Renderer
	logger   *zap.Logger
}

func NewPageHandler(mosqueUC *usecase.MosqueUseCase, views *view.Renderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		mosqueUC: mosqueUC,
		views:    views,
		logger:   logger,
	}
}

// Home renders the mosque list or map. The q and view query parameters apply
// a search or a view change before rendering.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	ctx := c.UserContext()

	args := c.Context().QueryArgs()
	if args.Has("q") {
		req := dto.SearchRequest{Query: c.Query("q")}
		if err := validator.ValidateRequest(&req); err != nil {
			return h.renderError(c, fiber.StatusBadRequest, msgInvalidRequest, false)
		}
	}

	var home usecase.HomeView
	switch {
	case args.Has("view"):
		mode, ok := domain.ParseViewMode(c.Query("view"))
		if !ok {
			return h.renderError(c, fiber.StatusBadRequest, msgInvalidRequest, false)
		}
		if args.Has("q") {
			s.Search(ctx, c.Query("q"))
		}
		home = s.SetViewMode(ctx, mode)
	case args.Has("q"):
		home = s.Search(ctx, c.Query("q"))
	default:
		home = s.View(ctx)
	}

	return h.views.Render(c, fiber.StatusOK, view.PageHome, view.Page{
		Title: siteTitle,
		Body:  h.homePage(home),
	})
}

func (h *PageHandler) homePage(home usecase.HomeView) dto.HomePage {
	snap := home.Snapshot
	page := dto.HomePage{
		Query:      snap.Filter.Query,
		Cities:     dto.NewCityOptions(snap.Filter),
		HasFilters: !snap.Filter.IsEmpty(),
		ViewMode:   string(home.ViewMode),
		Loading:    !snap.Loaded() && snap.Err == nil,
	}

	if snap.Err != nil {
		page.Error = msgListFetchFailed
		return page
	}

	page.Cards = dto.NewMosqueCards(snap.Mosques)
	if home.Selected != nil {
		card := dto.NewMosqueCard(*home.Selected)
		page.Selected = &card
	}
	return page
}

// ToggleCity selects a city filter, or clears it when it is already selected.
func (h *PageHandler) ToggleCity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	req := dto.CityToggleRequest{CityID: id}
	if err != nil || validator.ValidateRequest(&req) != nil {
		return h.renderError(c, fiber.StatusBadRequest, msgInvalidRequest, false)
	}

	middleware.CurrentSession(c).ToggleCity(c.UserContext(), req.CityID)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) ClearFilters(c *fiber.Ctx) error {
	middleware.CurrentSession(c).ClearFilters(c.UserContext())
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) SetViewMode(c *fiber.Ctx) error {
	req := dto.ViewModeRequest{Mode: c.Params("mode")}
	if err := validator.ValidateRequest(&req); err != nil {
		return h.renderError(c, fiber.StatusBadRequest, msgInvalidRequest, false)
	}

	middleware.CurrentSession(c).SetViewMode(c.UserContext(), domain.ViewMode(req.Mode))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// SelectMarker is posted by a marker click on the map.
func (h *PageHandler) SelectMarker(c *fiber.Ctx) error {
	req := dto.MosqueIDRequest{ID: c.Params("id")}
	if err := validator.ValidateRequest(&req); err != nil {
		return h.renderError(c, fiber.StatusBadRequest, msgInvalidRequest, false)
	}

	if _, err := middleware.CurrentSession(c).SelectMarker(c.UserContext(), req.ID); err != nil {
		h.logger.Debug("Marker selection rejected", zap.String("mosque_id", req.ID), zap.Error(err))
		return h.renderError(c, fiber.StatusNotFound, msgMosqueNotFound, false)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *PageHandler) DismissSelection(c *fiber.Ctx) error {
	middleware.CurrentSession(c).DismissSelection(c.UserContext())
	return c.Redirect("/", fiber.StatusSeeOther)
}

// MosqueDetail renders one mosque with its donation campaigns.
func (h *PageHandler) MosqueDetail(c *fiber.Ctx) error {
	req := dto.MosqueIDRequest{ID: c.Params("id")}
	if err := validator.ValidateRequest(&req); err != nil {
		return h.renderError(c, fiber.StatusNotFound, msgMosqueNotFound, false)
	}

	mosque, err := h.mosqueUC.GetMosque(c.UserContext(), req.ID)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return h.renderError(c, fiber.StatusNotFound, msgMosqueNotFound, false)
		}
		return h.renderError(c, fiber.StatusBadGateway, msgMosqueFetchFailed, true)
	}

	detail := dto.NewMosqueDetail(*mosque)
	return h.views.Render(c, fiber.StatusOK, view.PageMosque, view.Page{
		Title: detail.Name + " - منارة",
		Body:  detail,
	})
}

// NotFound is the fallback for unknown paths.
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	return h.renderError(c, fiber.StatusNotFound, "الصفحة غير موجودة", false)
}

func (h *PageHandler) renderError(c *fiber.Ctx, status int, title string, retry bool) error {
	return h.views.Render(c, status, view.PageError, view.Page{
		Title: title,
		Body:  dto.ErrorPage{Title: title, Retry: retry},
	})
}
