package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, cacheMiddleware, authMiddleware gin.HandlerFunc) {
	// === Public reference data (cached) ===
	public := g.Group("")
	public.Use(cacheMiddleware)
	{
		public.GET("/muscle-groups", h.ListMuscleGroups)
		public.GET("/muscle-groups/:id/equipment", h.ListEquipmentByGroup)
		public.GET("/equipment", h.ListEquipment)
		public.GET("/time-slots", h.ListTimeSlots)
	}

	// === Maintenance toggle (requires identity) ===
	protected := g.Group("")
	protected.Use(authMiddleware)
	{
		protected.PATCH("/equipment/:id/maintenance", h.SetMaintenance)
	}
}
