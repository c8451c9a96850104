package http

import (
	"time"

	"github.com/rnwgym/gym-booking-backend/internal/bodyweight"
)

type CreateBodyweightRequest struct {
	TimeSlotID   int64  `json:"time_slot_id" binding:"required"`
	ExerciseName string `json:"exercise_name" binding:"required"`
}

type ListBodyweightRequest struct {
	UserID      string `form:"user_id"`
	IncludeDone bool   `form:"include_done"`
}

type BodyweightResponse struct {
	ID           string    `json:"id"`
	ExerciseName string    `json:"exercise_name"`
	TimeSlotID   int64     `json:"time_slot_id"`
	Slot         string    `json:"slot"`
	UserID       string    `json:"user_id"`
	Done         bool      `json:"done"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewBodyweightResponse(r *bodyweight.Reservation) BodyweightResponse {
	return BodyweightResponse{
		ID:           r.ID,
		ExerciseName: r.ExerciseName,
		TimeSlotID:   r.TimeSlotID,
		Slot:         r.SlotLabel,
		UserID:       r.UserID,
		Done:         r.Done,
		CreatedAt:    r.CreatedAt,
	}
}
