package http

import (
	"context"
	"errors"
	"time"

	"github.com/geocoding-gateway/internal/config"
	"github.com/geocoding-gateway/internal/delivery/http/handler"
	"github.com/geocoding-gateway/internal/delivery/http/middleware"
	"github.com/geocoding-gateway/internal/observability"
	apperrors "github.com/geocoding-gateway/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	metrics *observability.Metrics

	// Handlers
	infoHandler      *handler.InfoHandler
	geocodingHandler *handler.GeocodingHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Metrics,
	infoHandler *handler.InfoHandler,
	geocodingHandler *handler.GeocodingHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Geocoding API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second + cfg.Upstream.Timeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		metrics:          metrics,
		infoHandler:      infoHandler,
		geocodingHandler: geocodingHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware. Recovery внутри Logger, чтобы
// запросы с паникой тоже попадали в access log и метрики.
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Metrics(s.metrics))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/docs/*", fiberSwagger.WrapHandler)

	s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))

	s.app.Get("/", s.infoHandler.Root)
	s.app.Get("/health", s.infoHandler.Health)

	s.app.Get("/search", s.geocodingHandler.Search)
	s.app.Post("/search", s.geocodingHandler.SearchPost)
	s.app.Get("/search/location", s.geocodingHandler.SearchByLocation)
	s.app.Post("/search/location", s.geocodingHandler.SearchByLocationPost)

	s.app.Get("/reverse", s.geocodingHandler.Reverse)
	s.app.Post("/reverse", s.geocodingHandler.ReversePost)
}

// App - Fiber приложение, нужно тестам
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

// customErrorHandler - кастомный обработчик ошибок. Ответ в том же формате
// {code, detail}, что и у хендлеров.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := apperrors.Internal(err)

		var fe *fiber.Error
		if errors.As(err, &fe) {
			resp = apperrors.New(httpErrorCode(fe.Code), fe.Message, fe.Code)
		}

		if resp.StatusCode >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", resp.StatusCode),
				zap.Error(err),
			)
		}

		return c.Status(resp.StatusCode).JSON(resp)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusUnprocessableEntity, fiber.StatusBadRequest:
		return apperrors.CodeInvalidRequest
	default:
		if status >= fiber.StatusInternalServerError {
			return apperrors.CodeInternalServer
		}
		return "HTTP_ERROR"
	}
}
