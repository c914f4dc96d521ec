package http

import (
	"github.com/gin-gonic/gin"

	"quick-event/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The preview
// route is the hot path for as-you-type clients, so it carries the rate
// limiter along with the others.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("", mw.RateLimit(), h.Create)
		events.POST("/parse", mw.RateLimit(), h.Parse)
		events.GET("/preview", mw.RateLimit(), h.Preview)
	}
}
