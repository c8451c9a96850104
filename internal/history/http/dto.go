package http

import (
	"time"

	"github.com/rnwgym/gym-booking-backend/internal/history"
)

type ListHistoryRequest struct {
	UserID string `form:"user_id"`
}

type RecordResponse struct {
	ID            int64     `json:"id"`
	ReservationID string    `json:"reservation_id"`
	UserID        string    `json:"user_id"`
	EquipmentID   int64     `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	TimeSlotID    int64     `json:"time_slot_id"`
	Slot          string    `json:"slot"`
	CompletedAt   time.Time `json:"completed_at"`
}

func NewRecordResponse(r *history.Record) RecordResponse {
	return RecordResponse{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		UserID:        r.UserID,
		EquipmentID:   r.EquipmentID,
		EquipmentName: r.EquipmentName,
		TimeSlotID:    r.TimeSlotID,
		Slot:          r.SlotLabel,
		CompletedAt:   r.CompletedAt,
	}
}
