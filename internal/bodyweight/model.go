package bodyweight

import (
	"net/http"
	"time"

	"github.com/rnwgym/gym-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "bodyweight reservation not found")
	ErrMissingFields    = apperror.New(http.StatusBadRequest, "user id, time slot and exercise name are required")
	ErrUserDoubleBooked = apperror.New(http.StatusConflict, "you already have another booking at this time")
	ErrUnknownTimeSlot  = apperror.New(http.StatusNotFound, "time slot not found")
)

// Reservation is a member's bodyweight exercise booking for one time slot.
// It holds no equipment, so there is no equipment contention to resolve;
// only the per-user-per-slot exclusivity invariant applies.
type Reservation struct {
	ID           string
	ExerciseName string
	TimeSlotID   int64
	SlotLabel    string
	UserID       string
	Done         bool
	CreatedAt    time.Time
}

// Filter defines parameters for listing bodyweight reservations.
type Filter struct {
	UserID      string
	IncludeDone bool
}
