package suggest

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	"github.com/rnwgym/gym-booking-backend/internal/integrations/gemini"
	"github.com/rnwgym/gym-booking-backend/internal/reservation"
)

type stubCatalog struct {
	catalog.Service

	groups    map[string]*catalog.MuscleGroup
	equipment map[int64][]*catalog.Equipment
	slots     map[int64]catalog.TimeSlot
}

func (s *stubCatalog) MuscleGroupByName(_ context.Context, name string) (*catalog.MuscleGroup, error) {
	g, ok := s.groups[name]
	if !ok {
		return nil, catalog.ErrMuscleGroupNotFound
	}
	return g, nil
}

func (s *stubCatalog) SlotByID(id int64) (catalog.TimeSlot, error) {
	slot, ok := s.slots[id]
	if !ok {
		return catalog.TimeSlot{}, catalog.ErrTimeSlotNotFound
	}
	return slot, nil
}

func (s *stubCatalog) EquipmentByGroup(_ context.Context, groupID int64) ([]*catalog.Equipment, error) {
	return s.equipment[groupID], nil
}

type stubReservations struct {
	reservation.Repository

	active []reservation.Occupied
}

func (s *stubReservations) ActiveByEquipmentIDs(context.Context, []int64) ([]reservation.Occupied, error) {
	return s.active, nil
}

func newTestService(reservations *stubReservations) Service {
	cat := &stubCatalog{
		groups: map[string]*catalog.MuscleGroup{
			"Chest": {ID: 1, Name: "Chest"},
		},
		equipment: map[int64][]*catalog.Equipment{
			1: {
				{ID: 3, Name: "Chest Press", MuscleGroupID: 1},
				{ID: 4, Name: "Incline Bench", MuscleGroupID: 1},
				{ID: 5, Name: "Chest Press Machine", MuscleGroupID: 1, Maintenance: true},
			},
		},
		slots: map[int64]catalog.TimeSlot{
			11: {ID: 11, Hour: 8, Minute: 30},
		},
	}
	// No API key, so generation is disabled and results are fully static.
	ai := gemini.NewClient("", time.Second, zerolog.Nop())
	return NewService(cat, reservations, ai, zerolog.Nop())
}

func TestAlternatives(t *testing.T) {
	ctx := context.Background()

	t.Run("flags busy and maintenance machines as unavailable", func(t *testing.T) {
		reservations := &stubReservations{active: []reservation.Occupied{
			{EquipmentID: 3, UserID: "u1", Start: 510, End: 525},
		}}
		svc := newTestService(reservations)

		alts, err := svc.Alternatives(ctx, "Chest", 11)
		require.NoError(t, err)

		require.Len(t, alts.Equipment, 3)
		byName := make(map[string]bool, len(alts.Equipment))
		for _, o := range alts.Equipment {
			byName[o.Name] = o.Available
		}
		assert.False(t, byName["Chest Press"], "busy machine")
		assert.True(t, byName["Incline Bench"], "free machine")
		assert.False(t, byName["Chest Press Machine"], "maintenance machine")
	})

	t.Run("always includes static bodyweight exercises", func(t *testing.T) {
		svc := newTestService(&stubReservations{})

		alts, err := svc.Alternatives(ctx, "Chest", 11)
		require.NoError(t, err)

		assert.Equal(t, []string{"Push-ups", "Dumbbell Fly", "Incline Push-ups"}, alts.Bodyweight)
		assert.Equal(t, "08:30", alts.SlotLabel)
	})

	t.Run("disabled generation leaves tips empty", func(t *testing.T) {
		svc := newTestService(&stubReservations{})

		alts, err := svc.Alternatives(ctx, "Chest", 11)
		require.NoError(t, err)

		assert.Empty(t, alts.AITips)
	})

	t.Run("unknown muscle group", func(t *testing.T) {
		svc := newTestService(&stubReservations{})

		_, err := svc.Alternatives(ctx, "Wings", 11)
		assert.ErrorIs(t, err, ErrUnknownMuscleGroup)
	})

	t.Run("unknown time slot", func(t *testing.T) {
		svc := newTestService(&stubReservations{})

		_, err := svc.Alternatives(ctx, "Chest", 99)
		assert.ErrorIs(t, err, ErrUnknownTimeSlot)
	})

	t.Run("adjacent slot booking keeps machine available", func(t *testing.T) {
		reservations := &stubReservations{active: []reservation.Occupied{
			{EquipmentID: 3, UserID: "u1", Start: 525, End: 540},
		}}
		svc := newTestService(reservations)

		alts, err := svc.Alternatives(ctx, "Chest", 11)
		require.NoError(t, err)

		for _, o := range alts.Equipment {
			if o.Name == "Chest Press" {
				assert.True(t, o.Available)
			}
		}
	})
}

func TestBodyweightFor(t *testing.T) {
	assert.NotEmpty(t, BodyweightFor("Legs"))
	assert.Empty(t, BodyweightFor("Wings"))

	// Callers get a copy, not the shared backing slice.
	list := BodyweightFor("Chest")
	list[0] = "changed"
	assert.Equal(t, "Push-ups", BodyweightFor("Chest")[0])
}

func TestQuoteFallsBackWhenDisabled(t *testing.T) {
	svc := newTestService(&stubReservations{})

	quote := svc.Quote(context.Background())
	assert.NotEmpty(t, quote)
}
