package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoseph/loomtrack-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		ev := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(inicio)).
			Str("ip", c.IP())
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Msg("request")

		return err
	}
}
