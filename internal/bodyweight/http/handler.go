package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rnwgym/gym-booking-backend/internal/auth"
	"github.com/rnwgym/gym-booking-backend/internal/bodyweight"
	"github.com/rnwgym/gym-booking-backend/internal/pkg/response"
)

type Handler struct {
	service bodyweight.Service
}

func NewHandler(service bodyweight.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBodyweightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := bodyweight.CreateRequest{
		UserID:       auth.GetUserID(c),
		TimeSlotID:   body.TimeSlotID,
		ExerciseName: body.ExerciseName,
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBodyweightResponse(res))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBodyweightRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := bodyweight.Filter{
		UserID:      req.UserID,
		IncludeDone: req.IncludeDone,
	}

	reservations, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bodyweight reservations"})
		return
	}

	items := make([]BodyweightResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewBodyweightResponse(r)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) MarkDone(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.MarkDone(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "marked as done"})
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
