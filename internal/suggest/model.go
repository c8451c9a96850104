package suggest

import (
	"net/http"

	"github.com/rnwgym/gym-booking-backend/internal/pkg/apperror"
)

var (
	ErrUnknownMuscleGroup = apperror.New(http.StatusNotFound, "muscle group not found")
	ErrUnknownTimeSlot    = apperror.New(http.StatusNotFound, "time slot not found")
)

// EquipmentOption is one machine from the requested muscle group together
// with its availability for the requested slot.
type EquipmentOption struct {
	EquipmentID int64  `json:"equipment_id"`
	Name        string `json:"name"`
	Available   bool   `json:"available"`
}

// Alternatives is the full suggestion set for one muscle group and slot.
// AITips is empty when the generation backend is disabled or failed; the
// static lists are always populated.
type Alternatives struct {
	MuscleGroup string            `json:"muscle_group"`
	TimeSlotID  int64             `json:"time_slot_id"`
	SlotLabel   string            `json:"slot_label"`
	Equipment   []EquipmentOption `json:"equipment"`
	Bodyweight  []string          `json:"bodyweight"`
	AITips      string            `json:"ai_tips,omitempty"`
}

// bodyweightAlternatives maps a muscle group name to exercises that need no
// machine. Groups missing from the map fall back to an empty list.
var bodyweightAlternatives = map[string][]string{
	"Chest":     {"Push-ups", "Dumbbell Fly", "Incline Push-ups"},
	"Back":      {"Pull-ups", "Dumbbell Rows", "Resistance Band Rows"},
	"Legs":      {"Lunges", "Bodyweight Squats", "Step-ups"},
	"Arms":      {"Bicep Curls (Dumbbell)", "Tricep Dips", "Hammer Curls"},
	"Shoulders": {"Lateral Raises", "Front Raises", "Overhead Press (Dumbbell)"},
	"Cardio":    {"Jump Rope", "Stationary Bike", "High Knees"},
}

// BodyweightFor returns the static no-machine exercises for a muscle group.
func BodyweightFor(muscleGroup string) []string {
	if list, ok := bodyweightAlternatives[muscleGroup]; ok {
		out := make([]string, len(list))
		copy(out, list)
		return out
	}
	return []string{}
}

var fallbackQuotes = []string{
	"The only bad workout is the one that didn't happen.",
	"Small steps every day add up to big results.",
	"Strength does not come from winning. Your struggles develop your strengths.",
}
