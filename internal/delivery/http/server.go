package http

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/manara-web/internal/config"
	"github.com/manara-web/internal/delivery/http/handler"
	"github.com/manara-web/internal/delivery/http/middleware"
	"github.com/manara-web/internal/pkg/errors"
	"github.com/manara-web/internal/pkg/utils"
	"github.com/manara-web/internal/usecase"
)

// Server - HTTP server based on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	sessions *usecase.SessionManager
	static   fs.FS

	// Handlers
	pageHandler   *handler.PageHandler
	mosqueHandler *handler.MosqueHandler
}

// NewServer - creates the HTTP server. static holds the assets served under /static.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sessions *usecase.SessionManager,
	static fs.FS,
	pageHandler *handler.PageHandler,
	mosqueHandler *handler.MosqueHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Manara Web",
		Immutable:    true, // cookie and query values outlive the request in session state
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		sessions:      sessions,
		static:        static,
		pageHandler:   pageHandler,
		mosqueHandler: mosqueHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the Fiber app for in-process requests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	s.app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(s.static),
		MaxAge: 3600,
	}))

	session := middleware.Session(
		s.sessions,
		s.config.Session.CookieName,
		s.config.Session.TTL,
		s.config.IsProduction(),
	)

	api := s.app.Group("/api/v1")
	api.Get("/health", s.mosqueHandler.Health)
	api.Get("/mosques", s.mosqueHandler.ListMosques)
	api.Get("/mosques/:id", s.mosqueHandler.GetMosque)
	api.Get("/session/map", session, s.mosqueHandler.MapScene)

	// Pages and the form actions posted from them
	s.app.Get("/", session, s.pageHandler.Home)
	s.app.Post("/filters/city/:id", session, s.pageHandler.ToggleCity)
	s.app.Post("/filters/clear", session, s.pageHandler.ClearFilters)
	s.app.Post("/view/:mode", session, s.pageHandler.SetViewMode)
	s.app.Post("/map/markers/:id/select", session, s.pageHandler.SelectMarker)
	s.app.Post("/map/selection/dismiss", session, s.pageHandler.DismissSelection)
	s.app.Get("/mosque/:id", s.pageHandler.MosqueDetail)

	s.app.Use(s.pageHandler.NotFound)
}

// Start - starts the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown of the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - errors that escaped a handler
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := errors.As(err); ok {
			logger.Warn("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", appErr.StatusCode),
				zap.Error(err),
			)
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New("INTERNAL_SERVER_ERROR", err.Error(), code),
		})
	}
}
