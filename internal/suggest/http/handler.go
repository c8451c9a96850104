package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnwgym/gym-booking-backend/internal/pkg/response"
	"github.com/rnwgym/gym-booking-backend/internal/suggest"
)

type Handler struct {
	service suggest.Service
}

func NewHandler(service suggest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Alternatives(c *gin.Context) {
	var req AlternativesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	alts, err := h.service.Alternatives(c.Request.Context(), req.MuscleGroup, req.TimeSlotID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, alts)
}

func (h *Handler) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, QuoteResponse{Quote: h.service.Quote(c.Request.Context())})
}
