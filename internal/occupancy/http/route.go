package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/occupancy")

	group.GET("/zones", h.ZoneCounts)

	protected := group.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/full", h.AllSlotsFull)
	}
}
