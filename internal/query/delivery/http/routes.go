package http

import (
	"nb-query/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under rg (/api/v1).
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	q := rg.Group("/query", mw.RateLimit())
	{
		q.GET("/items", h.Items)
		q.GET("/render", h.Render)
	}

	pages := rg.Group("/pages", mw.RateLimit())
	{
		pages.POST("/render", h.RenderPage)
	}
}
