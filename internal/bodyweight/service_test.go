package bodyweight

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	"github.com/rnwgym/gym-booking-backend/internal/reservation"
)

type fakeRepo struct {
	created []*Reservation
}

func (f *fakeRepo) CreateExclusive(_ context.Context, r *Reservation) error {
	r.ID = "bw-1"
	f.created = append(f.created, r)
	return nil
}

func (f *fakeRepo) List(context.Context, Filter) ([]*Reservation, error) { return nil, nil }

func (f *fakeRepo) MarkDone(context.Context, string) error { return nil }

func (f *fakeRepo) Delete(context.Context, string) error { return nil }

type stubReservations struct {
	reservation.Repository

	active []reservation.Occupied
}

func (s *stubReservations) ActiveForConflict(context.Context, int64, string) ([]reservation.Occupied, error) {
	return s.active, nil
}

type stubCatalog struct {
	catalog.Service

	slots map[int64]catalog.TimeSlot
}

func (s *stubCatalog) SlotByID(id int64) (catalog.TimeSlot, error) {
	slot, ok := s.slots[id]
	if !ok {
		return catalog.TimeSlot{}, catalog.ErrTimeSlotNotFound
	}
	return slot, nil
}

func newTestService(repo *fakeRepo, reservations *stubReservations) Service {
	cat := &stubCatalog{slots: map[int64]catalog.TimeSlot{
		11: {ID: 11, Hour: 8, Minute: 30},
	}}
	return NewService(repo, reservations, cat, zerolog.Nop())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a bodyweight reservation", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo, &stubReservations{})

		res, err := svc.Create(ctx, CreateRequest{UserID: "u1", TimeSlotID: 11, ExerciseName: " Push-ups "})

		require.NoError(t, err)
		assert.Equal(t, "bw-1", res.ID)
		assert.Equal(t, "Push-ups", res.ExerciseName)
		assert.Equal(t, "08:30", res.SlotLabel)
		require.Len(t, repo.created, 1)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &stubReservations{})

		cases := []CreateRequest{
			{UserID: "", TimeSlotID: 11, ExerciseName: "Push-ups"},
			{UserID: "u1", TimeSlotID: 0, ExerciseName: "Push-ups"},
			{UserID: "u1", TimeSlotID: 11, ExerciseName: "   "},
		}
		for _, req := range cases {
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, ErrMissingFields)
		}
	})

	t.Run("rejects unknown time slot", func(t *testing.T) {
		svc := newTestService(&fakeRepo{}, &stubReservations{})

		_, err := svc.Create(ctx, CreateRequest{UserID: "u1", TimeSlotID: 99, ExerciseName: "Push-ups"})

		assert.ErrorIs(t, err, ErrUnknownTimeSlot)
	})

	t.Run("rejects when member already booked in the slot", func(t *testing.T) {
		// An equipment reservation in the same slot blocks the bodyweight one.
		repo := &fakeRepo{}
		reservations := &stubReservations{active: []reservation.Occupied{
			{EquipmentID: 1, UserID: "u1", Start: 510, End: 525},
		}}
		svc := newTestService(repo, reservations)

		_, err := svc.Create(ctx, CreateRequest{UserID: "u1", TimeSlotID: 11, ExerciseName: "Push-ups"})

		assert.ErrorIs(t, err, ErrUserDoubleBooked)
		assert.Empty(t, repo.created)
	})

	t.Run("other members do not interfere", func(t *testing.T) {
		reservations := &stubReservations{active: []reservation.Occupied{
			{EquipmentID: 1, UserID: "u2", Start: 510, End: 525},
		}}
		svc := newTestService(&fakeRepo{}, reservations)

		_, err := svc.Create(ctx, CreateRequest{UserID: "u1", TimeSlotID: 11, ExerciseName: "Push-ups"})

		assert.NoError(t, err)
	})
}
