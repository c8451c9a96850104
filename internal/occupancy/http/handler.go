package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnwgym/gym-booking-backend/internal/auth"
	"github.com/rnwgym/gym-booking-backend/internal/occupancy"
)

type Handler struct {
	service occupancy.Service
}

func NewHandler(service occupancy.Service) *Handler {
	return &Handler{service: service}
}

// ZoneCountResponse mirrors the heatmap feed: one entry per zone, always
// present even when the count is zero.
type ZoneCountResponse struct {
	Zone  string `json:"zone_name"`
	Count int    `json:"count"`
}

func (h *Handler) ZoneCounts(c *gin.Context) {
	counts, err := h.service.ZoneCounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate occupancy"})
		return
	}

	items := make([]ZoneCountResponse, len(counts))
	for i, zc := range counts {
		items[i] = ZoneCountResponse{Zone: zc.Zone, Count: zc.Count}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AllSlotsFull(c *gin.Context) {
	userID := auth.GetUserID(c)

	full, err := h.service.AllSlotsFull(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check slot occupancy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"all_slots_full": full})
}
