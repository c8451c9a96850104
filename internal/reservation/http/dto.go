package http

import (
	"time"

	"github.com/rnwgym/gym-booking-backend/internal/reservation"
)

type CreateReservationRequest struct {
	EquipmentID int64 `json:"equipment_id" binding:"required"`
	TimeSlotID  int64 `json:"time_slot_id" binding:"required"`
}

// ListReservationsRequest defines query parameters for listing reservations.
type ListReservationsRequest struct {
	UserID      string `form:"user_id"`
	EquipmentID int64  `form:"equipment_id"`
	IncludeDone bool   `form:"include_done"`
}

type ReservationResponse struct {
	ID            string    `json:"id"`
	EquipmentID   int64     `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	TimeSlotID    int64     `json:"time_slot_id"`
	Slot          string    `json:"slot"`
	UserID        string    `json:"user_id"`
	Done          bool      `json:"done"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		EquipmentID:   r.EquipmentID,
		EquipmentName: r.EquipmentName,
		TimeSlotID:    r.TimeSlotID,
		Slot:          r.SlotLabel,
		UserID:        r.UserID,
		Done:          r.Done,
		CreatedAt:     r.CreatedAt,
	}
}
