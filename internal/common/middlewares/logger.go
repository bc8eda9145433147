package middlewares

import (
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// RequestLogger mencatat setiap request ke logrus.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			entry := log.WithFields(log.Fields{
				"method":  req.Method,
				"path":    c.Path(),
				"uri":     req.RequestURI,
				"status":  c.Response().Status,
				"latency": time.Since(start).String(),
				"remote":  c.RealIP(),
			})
			if err != nil {
				entry.WithError(err).Warn("request failed")
			} else {
				entry.Debug("request handled")
			}
			return nil
		}
	}
}
