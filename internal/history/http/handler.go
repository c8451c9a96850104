package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnwgym/gym-booking-backend/internal/history"
	"github.com/rnwgym/gym-booking-backend/internal/pkg/response"
)

type Handler struct {
	service history.Service
}

func NewHandler(service history.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	records, err := h.service.List(c.Request.Context(), history.Filter{UserID: req.UserID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list history"})
		return
	}

	items := make([]RecordResponse, len(records))
	for i, r := range records {
		items[i] = NewRecordResponse(r)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}
