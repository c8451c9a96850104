package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotMinutes(t *testing.T) {
	slot := TimeSlot{ID: 11, Hour: 8, Minute: 30}

	assert.Equal(t, 510, slot.StartMinutes())
	assert.Equal(t, 525, slot.EndMinutes())
}

func TestTimeSlotLabel(t *testing.T) {
	assert.Equal(t, "06:00", TimeSlot{Hour: 6, Minute: 0}.Label())
	assert.Equal(t, "08:45", TimeSlot{Hour: 8, Minute: 45}.Label())
	assert.Equal(t, "09:15", TimeSlot{Hour: 9, Minute: 15}.Label())
}

func TestAdjacentSlotsDoNotShareMinutes(t *testing.T) {
	a := TimeSlot{Hour: 8, Minute: 30}
	b := TimeSlot{Hour: 8, Minute: 45}

	assert.Equal(t, a.EndMinutes(), b.StartMinutes())
}
