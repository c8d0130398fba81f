package http

import (
	"strconv"
	"time"

	"fulfillment/internal/adapters/out/metrics"

	"github.com/labstack/echo/v4"
)

// RequestMetrics records the count and latency of every request, labelled by
// route template.
func RequestMetrics(m *metrics.ServerMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.Requests.WithLabelValues(path, strconv.Itoa(c.Response().Status)).Inc()
			m.LatencyMS.WithLabelValues(path).Observe(float64(time.Since(start).Milliseconds()))
			return nil
		}
	}
}
