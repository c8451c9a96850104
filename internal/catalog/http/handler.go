package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	"github.com/rnwgym/gym-booking-backend/internal/pkg/response"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListMuscleGroups(c *gin.Context) {
	groups, err := h.service.MuscleGroups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list muscle groups"})
		return
	}

	items := make([]MuscleGroupResponse, len(groups))
	for i, g := range groups {
		items[i] = NewMuscleGroupResponse(g)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) ListEquipmentByGroup(c *gin.Context) {
	groupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid muscle group id"})
		return
	}

	equipment, err := h.service.EquipmentByGroup(c.Request.Context(), groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list equipment"})
		return
	}

	items := make([]EquipmentResponse, len(equipment))
	for i, e := range equipment {
		items[i] = NewEquipmentResponse(e)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) ListEquipment(c *gin.Context) {
	equipment, err := h.service.Equipment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list equipment"})
		return
	}

	items := make([]EquipmentResponse, len(equipment))
	for i, e := range equipment {
		items[i] = NewEquipmentResponse(e)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) ListTimeSlots(c *gin.Context) {
	slots := h.service.Slots()

	items := make([]TimeSlotResponse, len(slots))
	for i, t := range slots {
		items[i] = NewTimeSlotResponse(t)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) SetMaintenance(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid equipment id"})
		return
	}

	var body SetMaintenanceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.SetMaintenance(c.Request.Context(), equipmentID, *body.Maintenance); err != nil {
		if errors.Is(err, catalog.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "equipment not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
