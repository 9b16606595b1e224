package middleware

import (
	"strconv"

	"github.com/geocoding-gateway/internal/observability"
	"github.com/gofiber/fiber/v2"
)

// Metrics считает входящие запросы по методу, шаблону маршрута и статусу.
// Должен стоять снаружи Logger: к моменту возврата статус уже записан.
func Metrics(m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		m.HTTPRequests.WithLabelValues(
			c.Method(),
			routeLabel(c, status),
			strconv.Itoa(status),
		).Inc()

		return err
	}
}

// routeLabel - шаблон маршрута вместо пути, чтобы не раздувать кардинальность метрик
func routeLabel(c *fiber.Ctx, status int) string {
	path := c.Route().Path
	// хендлер не найден: маршрут остается маршрутом middleware
	if status == fiber.StatusNotFound && path == "/" && c.Path() != "/" {
		return "unmatched"
	}
	return path
}
