package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrMuscleGroupNotFound = errors.New("muscle group not found")
	ErrEquipmentNotFound   = errors.New("equipment not found")
	ErrTimeSlotNotFound    = errors.New("time slot not found")
)

// SlotDurationMinutes is the fixed length of every bookable time slot.
const SlotDurationMinutes = 15

// MuscleGroup represents a trainable muscle group (e.g., Chest, Cardio).
type MuscleGroup struct {
	ID   int64
	Name string
}

// Equipment represents a single exclusive machine on the gym floor.
// Maintenance equipment is never admissible for new reservations.
type Equipment struct {
	ID            int64
	Name          string
	MuscleGroupID int64
	Maintenance   bool
}

// TimeSlot is one entry of the fixed 15-minute booking grid.
// Slots are ordered by start offset and immutable once loaded.
type TimeSlot struct {
	ID     int64
	Hour   int
	Minute int
}

// StartMinutes returns the slot's start offset in minutes from midnight.
func (t TimeSlot) StartMinutes() int {
	return t.Hour*60 + t.Minute
}

// EndMinutes returns the exclusive end of the slot's occupied interval,
// so adjacent slots (end == next start) never overlap.
func (t TimeSlot) EndMinutes() int {
	return t.StartMinutes() + SlotDurationMinutes
}

// Label renders the slot as HH:MM.
func (t TimeSlot) Label() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
