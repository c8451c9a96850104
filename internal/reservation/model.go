package reservation

import (
	"net/http"
	"time"

	"github.com/rnwgym/gym-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "reservation not found")
	ErrAlreadyCompleted = apperror.New(http.StatusConflict, "reservation already completed")
	ErrMaintenance      = apperror.New(http.StatusConflict, "equipment is under maintenance")
	ErrEquipmentOverlap = apperror.New(http.StatusConflict, "equipment is already booked during this slot")
	ErrUserDoubleBooked = apperror.New(http.StatusConflict, "you already have another booking at this time")
	ErrUnknownEquipment = apperror.New(http.StatusNotFound, "equipment not found")
	ErrUnknownTimeSlot  = apperror.New(http.StatusNotFound, "time slot not found")
	ErrMissingUser      = apperror.New(http.StatusBadRequest, "user id is required")
)

// Reservation is one member's exclusive claim on a piece of equipment for a
// single time slot. A row with Done=false is active; completion flips the
// flag and archives a history record in the same transaction.
type Reservation struct {
	ID            string
	EquipmentID   int64
	EquipmentName string
	TimeSlotID    int64
	SlotLabel     string
	UserID        string
	Done          bool
	CreatedAt     time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	UserID      string
	EquipmentID int64
	IncludeDone bool
}
