package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	equipment map[int64]*Equipment
	slots     []TimeSlot
}

func (m *memRepo) ListMuscleGroups(context.Context) ([]*MuscleGroup, error) { return nil, nil }

func (m *memRepo) GetMuscleGroupByName(context.Context, string) (*MuscleGroup, error) {
	return nil, ErrMuscleGroupNotFound
}

func (m *memRepo) ListEquipment(context.Context) ([]*Equipment, error) { return nil, nil }

func (m *memRepo) ListEquipmentByGroup(context.Context, int64) ([]*Equipment, error) {
	return nil, nil
}

func (m *memRepo) GetEquipmentByID(_ context.Context, id int64) (*Equipment, error) {
	e, ok := m.equipment[id]
	if !ok {
		return nil, ErrEquipmentNotFound
	}
	return e, nil
}

func (m *memRepo) SetMaintenance(_ context.Context, id int64, maintenance bool) error {
	m.equipment[id].Maintenance = maintenance
	return nil
}

func (m *memRepo) ListTimeSlots(context.Context) ([]TimeSlot, error) { return m.slots, nil }

func TestLoadSlotsOrdersByStart(t *testing.T) {
	repo := &memRepo{
		slots: []TimeSlot{
			{ID: 3, Hour: 9, Minute: 0},
			{ID: 1, Hour: 6, Minute: 0},
			{ID: 2, Hour: 6, Minute: 15},
		},
	}
	svc := NewService(repo)
	require.NoError(t, svc.LoadSlots(context.Background()))

	slots := svc.Slots()
	require.Len(t, slots, 3)
	assert.Equal(t, int64(1), slots[0].ID)
	assert.Equal(t, int64(2), slots[1].ID)
	assert.Equal(t, int64(3), slots[2].ID)
}

func TestSlotByID(t *testing.T) {
	repo := &memRepo{slots: []TimeSlot{{ID: 11, Hour: 8, Minute: 30}}}
	svc := NewService(repo)
	require.NoError(t, svc.LoadSlots(context.Background()))

	slot, err := svc.SlotByID(11)
	require.NoError(t, err)
	assert.Equal(t, "08:30", slot.Label())

	_, err = svc.SlotByID(99)
	assert.ErrorIs(t, err, ErrTimeSlotNotFound)
}

func TestSetMaintenanceChecksExistence(t *testing.T) {
	repo := &memRepo{equipment: map[int64]*Equipment{
		1: {ID: 1, Name: "Treadmill"},
	}}
	svc := NewService(repo)

	require.NoError(t, svc.SetMaintenance(context.Background(), 1, true))
	assert.True(t, repo.equipment[1].Maintenance)

	err := svc.SetMaintenance(context.Background(), 42, true)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}
