package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/trip-dashboard/internal/config"
	"github.com/trip-dashboard/internal/delivery/http/handler"
	"github.com/trip-dashboard/internal/delivery/http/middleware"
	"github.com/trip-dashboard/internal/usecase"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	sessions *usecase.SessionUseCase

	// Handlers
	dashboardHandler *handler.DashboardHandler
	apiHandler       *handler.DashboardAPIHandler
	healthHandler    *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sessions *usecase.SessionUseCase,
) (*Server, error) {
	app := fiber.New(fiber.Config{
		AppName:      "Trip Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.GetTripAPITimeout() + 10*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	dashboardHandler, err := handler.NewDashboardHandler(logger.With(zap.String("handler", "dashboard")))
	if err != nil {
		return nil, err
	}

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		sessions:         sessions,
		dashboardHandler: dashboardHandler,
		apiHandler:       handler.NewDashboardAPIHandler(logger.With(zap.String("handler", "dashboard_api"))),
		healthHandler:    handler.NewHealthHandler(sessions),
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s, nil
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Health)

	session := middleware.Session(s.sessions, s.config.Session.IdleTTL)

	// Страница дашборда
	s.app.Get("/", session, s.dashboardHandler.Index)
	s.app.Post("/refresh", session, s.dashboardHandler.Refresh)

	// JSON API
	dashboard := api.Group("/dashboard", session)
	dashboard.Get("", s.apiHandler.GetDashboard)
	dashboard.Post("/refresh", s.apiHandler.RefreshDashboard)
}

// App - fiber приложение, используется в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
