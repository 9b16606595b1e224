package handler

import (
	"context"
	"time"

	"github.com/geocoding-gateway/internal/pkg/utils"
	"github.com/geocoding-gateway/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
)

const (
	ServiceName = "geocoding-api"

	healthCheckTimeout = 2 * time.Second
)

// HealthChecker - зависимость, которую опрашивает /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// InfoHandler отдает описание сервиса и health check
type InfoHandler struct {
	version string
	checks  map[string]HealthChecker
}

func NewInfoHandler(version string) *InfoHandler {
	return &InfoHandler{
		version: version,
		checks:  make(map[string]HealthChecker),
	}
}

// WithCheck добавляет зависимость в health check
func (h *InfoHandler) WithCheck(name string, check HealthChecker) *InfoHandler {
	h.checks[name] = check
	return h
}

// Root godoc
// @Summary Информация о сервисе
// @Tags Info
// @Produce json
// @Success 200 {object} dto.InfoResponse
// @Router / [get]
func (h *InfoHandler) Root(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.InfoResponse{
		Message: "Geocoding API",
		Version: h.version,
		Endpoints: map[string]string{
			"search":               "/search",
			"search_with_location": "/search/location",
			"reverse_geocode":      "/reverse",
			"health":               "/health",
			"docs":                 "/docs/index.html",
		},
	})
}

// Health godoc
// @Summary Health check
// @Description Кеш необязателен: недоступный Redis дает статус degraded, но не 503
// @Tags Info
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *InfoHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	}

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
		defer cancel()

		resp.Checks = make(map[string]string, len(h.checks))
		for name, check := range h.checks {
			if err := check.Health(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				continue
			}
			resp.Checks[name] = "ok"
		}
	}

	return utils.SendSuccess(c, resp)
}
