package occupancy

// Zones is the ordered list of physical gym areas shown on the floor map.
// It is static reference data: the floor layout changes with renovations,
// not with bookings.
var Zones = []string{
	"Treadmills",
	"Ellipticals",
	"Stationary Bikes",
	"Chest Press",
	"Leg Press",
	"Lat Pulldown",
	"Squat Rack",
	"Dumbbell Area",
	"Bicep Curl",
	"Calisthenics Area",
}

// equipmentToZone maps equipment display names to their zone, many-to-one.
// Several machines share a zone (e.g. Incline Bench stands in the Chest
// Press area).
var equipmentToZone = map[string]string{
	"Treadmill":             "Treadmills",
	"Elliptical":            "Ellipticals",
	"Stationary Bike":       "Stationary Bikes",
	"Chest Press":           "Chest Press",
	"Chest Press Machine":   "Chest Press",
	"Incline Bench":         "Chest Press",
	"Leg Press":             "Leg Press",
	"Lat Pulldown":          "Lat Pulldown",
	"Seated Row":            "Lat Pulldown",
	"Squat Rack":            "Squat Rack",
	"Bicep Curl":            "Bicep Curl",
	"Bicep Curl Machine":    "Bicep Curl",
	"Tricep Pushdown":       "Calisthenics Area",
	"Shoulder Press":        "Dumbbell Area",
	"Lateral Raise Machine": "Dumbbell Area",
}

// ZoneForEquipment returns the zone for an equipment display name and
// whether the name maps to a known zone.
func ZoneForEquipment(equipmentName string) (string, bool) {
	zone, ok := equipmentToZone[equipmentName]
	return zone, ok
}

// ZoneCount is the number of active reservations inside one zone.
type ZoneCount struct {
	Zone  string
	Count int
}
