package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-api/pkg/logger"
)

const localLogger = "logger"

// RequestLogger escribe una línea por petición y deja el logger en c.Locals para los handlers.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.Locals(localLogger, log)
		err := c.Next()

		var ev *zerolog.Event
		if err != nil {
			ev = log.Error().Err(err)
		} else {
			ev = log.Info()
		}
		ev = ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start))
		if id := GetIdentity(c); id != nil {
			ev = ev.Str("user", id.Username)
		}
		ev.Msg("request")
		return err
	}
}

func requestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
