package reservation

// Reason classifies the outcome of an admission check.
type Reason string

const (
	ReasonAdmitted          Reason = "admitted"
	ReasonMaintenance       Reason = "equipment_under_maintenance"
	ReasonEquipmentOverlap  Reason = "equipment_overlap"
	ReasonUserDoubleBooking Reason = "user_double_booking"
)

// Decision is the result of checking a candidate reservation against a
// snapshot of the active set.
type Decision struct {
	Admitted bool
	Reason   Reason
}

// Candidate describes a requested reservation with its occupied interval
// [Start, End) in minutes from midnight.
type Candidate struct {
	EquipmentID int64
	UserID      string
	Start       int
	End         int
}

// Occupied is one active reservation's claim on time. EquipmentID is zero
// for bodyweight reservations, which hold no equipment.
type Occupied struct {
	EquipmentID int64
	UserID      string
	Start       int
	End         int
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Adjacent intervals (end == next start) do not.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// Check decides whether a candidate reservation may be admitted given the
// equipment's maintenance state and a snapshot of active reservations.
//
// It is a pure function of its inputs: the caller supplies a consistent
// snapshot and remains responsible for atomically persisting an admitted
// result. The repository's conditional insert is the authoritative guard;
// this check is the advisory fast path.
//
// Check order: maintenance is an absolute block independent of scheduling,
// then equipment contention, then the member's own schedule.
func Check(c Candidate, underMaintenance bool, active []Occupied) Decision {
	if underMaintenance {
		return Decision{Reason: ReasonMaintenance}
	}

	for _, o := range active {
		if o.EquipmentID != 0 && o.EquipmentID == c.EquipmentID && Overlaps(c.Start, c.End, o.Start, o.End) {
			return Decision{Reason: ReasonEquipmentOverlap}
		}
	}

	for _, o := range active {
		if o.UserID == c.UserID && Overlaps(c.Start, c.End, o.Start, o.End) {
			return Decision{Reason: ReasonUserDoubleBooking}
		}
	}

	return Decision{Admitted: true, Reason: ReasonAdmitted}
}

// EquipmentFree reports whether the given equipment has no active
// reservation overlapping [start, end). It re-runs the overlap predicate as
// a pure query and is used to probe alternatives after a rejection.
func EquipmentFree(equipmentID int64, start, end int, active []Occupied) bool {
	for _, o := range active {
		if o.EquipmentID == equipmentID && Overlaps(start, end, o.Start, o.End) {
			return false
		}
	}
	return true
}

// UserFree reports whether the member has no active reservation (equipment
// or bodyweight) overlapping [start, end).
func UserFree(userID string, start, end int, active []Occupied) bool {
	for _, o := range active {
		if o.UserID == userID && Overlaps(start, end, o.Start, o.End) {
			return false
		}
	}
	return true
}
