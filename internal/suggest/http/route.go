package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/suggestions", h.Alternatives)
	g.GET("/quote", h.Quote)
}
