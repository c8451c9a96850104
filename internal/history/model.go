package history

import "time"

// Record is the archived snapshot of a reservation taken at the moment of
// completion. Records are written exactly once, inside the reservation
// completion transaction, and are never mutated or deleted here; this
// module only reads them. Cancellations leave no record.
type Record struct {
	ID            int64
	ReservationID string
	UserID        string
	EquipmentID   int64
	EquipmentName string
	TimeSlotID    int64
	SlotLabel     string
	CompletedAt   time.Time
}

// Filter defines parameters for listing history records.
type Filter struct {
	UserID string
}
