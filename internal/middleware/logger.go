package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request after completion: method, path, status
// and latency. Health probes are skipped to keep the logs readable.
func (m Middleware) Logger() gin.HandlerFunc {
	skip := map[string]struct{}{
		"/health": {},
		"/ready":  {},
		"/live":   {},
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		if _, ok := skip[path]; ok {
			return
		}

		m.l.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, path, c.Writer.Status(), time.Since(start).Round(time.Millisecond))
	}
}
