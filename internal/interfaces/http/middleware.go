package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aadish-inventory/pkg/logger"
)

// RequestLogger devuelve un middleware Fiber que registra método, ruta, status y latencia.
// Los 5xx se registran en nivel error; el resto en debug.
func RequestLogger(log *logger.Logger) fiber.Handler {
	httpLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := httpLog.Debug()
		if status >= fiber.StatusInternalServerError {
			ev = httpLog.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
