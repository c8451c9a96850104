package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnwgym/gym-booking-backend/internal/catalog"
)

// stubCatalogRepo backs a real catalog service with fixed reference data.
type stubCatalogRepo struct {
	equipment map[int64]*catalog.Equipment
	slots     []catalog.TimeSlot
}

func (s *stubCatalogRepo) ListMuscleGroups(context.Context) ([]*catalog.MuscleGroup, error) {
	return nil, nil
}

func (s *stubCatalogRepo) GetMuscleGroupByName(context.Context, string) (*catalog.MuscleGroup, error) {
	return nil, catalog.ErrMuscleGroupNotFound
}

func (s *stubCatalogRepo) ListEquipment(context.Context) ([]*catalog.Equipment, error) {
	return nil, nil
}

func (s *stubCatalogRepo) ListEquipmentByGroup(context.Context, int64) ([]*catalog.Equipment, error) {
	return nil, nil
}

func (s *stubCatalogRepo) GetEquipmentByID(_ context.Context, id int64) (*catalog.Equipment, error) {
	e, ok := s.equipment[id]
	if !ok {
		return nil, catalog.ErrEquipmentNotFound
	}
	return e, nil
}

func (s *stubCatalogRepo) SetMaintenance(_ context.Context, id int64, maintenance bool) error {
	s.equipment[id].Maintenance = maintenance
	return nil
}

func (s *stubCatalogRepo) ListTimeSlots(context.Context) ([]catalog.TimeSlot, error) {
	return s.slots, nil
}

// fakeRepo is an in-memory reservation store with programmable failures.
type fakeRepo struct {
	active    []Occupied
	createErr error
	created   []*Reservation
}

func (f *fakeRepo) CreateExclusive(_ context.Context, r *Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	r.ID = "res-1"
	r.CreatedAt = time.Now()
	f.created = append(f.created, r)
	return nil
}

func (f *fakeRepo) GetByID(context.Context, string) (*Reservation, error) { return nil, ErrNotFound }

func (f *fakeRepo) List(context.Context, Filter) ([]*Reservation, error) { return nil, nil }

func (f *fakeRepo) ActiveForConflict(context.Context, int64, string) ([]Occupied, error) {
	return f.active, nil
}

func (f *fakeRepo) ActiveByEquipmentIDs(context.Context, []int64) ([]Occupied, error) {
	return f.active, nil
}

func (f *fakeRepo) ActiveSlotIDsByUser(context.Context, string) ([]int64, error) { return nil, nil }

func (f *fakeRepo) Complete(context.Context, string) (*Reservation, error) { return nil, ErrNotFound }

func (f *fakeRepo) Cancel(context.Context, string) error { return ErrNotFound }

func newTestCatalog(t *testing.T) catalog.Service {
	t.Helper()

	repo := &stubCatalogRepo{
		equipment: map[int64]*catalog.Equipment{
			1: {ID: 1, Name: "Treadmill", MuscleGroupID: 6},
			2: {ID: 2, Name: "Elliptical", MuscleGroupID: 6},
			3: {ID: 3, Name: "Chest Press", MuscleGroupID: 1, Maintenance: true},
		},
		slots: []catalog.TimeSlot{
			{ID: 11, Hour: 8, Minute: 30},
			{ID: 12, Hour: 8, Minute: 45},
		},
	}

	svc := catalog.NewService(repo)
	require.NoError(t, svc.LoadSlots(context.Background()))
	return svc
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("admits a free slot", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, newTestCatalog(t), zerolog.Nop())

		res, err := svc.Create(ctx, CreateRequest{UserID: "u1", EquipmentID: 1, TimeSlotID: 11})

		require.NoError(t, err)
		assert.Equal(t, "res-1", res.ID)
		assert.Equal(t, "Treadmill", res.EquipmentName)
		assert.Equal(t, "08:30", res.SlotLabel)
		assert.False(t, res.Done)
		require.Len(t, repo.created, 1)
	})

	t.Run("rejects equipment overlap without persisting", func(t *testing.T) {
		repo := &fakeRepo{
			active: []Occupied{{EquipmentID: 1, UserID: "u1", Start: 510, End: 525}},
		}
		svc := NewService(repo, newTestCatalog(t), zerolog.Nop())

		_, err := svc.Create(ctx, CreateRequest{UserID: "u2", EquipmentID: 1, TimeSlotID: 11})

		assert.ErrorIs(t, err, ErrEquipmentOverlap)
		assert.Empty(t, repo.created)
	})

	t.Run("rejects member double booking on other equipment", func(t *testing.T) {
		repo := &fakeRepo{
			active: []Occupied{{EquipmentID: 1, UserID: "u1", Start: 510, End: 525}},
		}
		svc := NewService(repo, newTestCatalog(t), zerolog.Nop())

		_, err := svc.Create(ctx, CreateRequest{UserID: "u1", EquipmentID: 2, TimeSlotID: 11})

		assert.ErrorIs(t, err, ErrUserDoubleBooked)
		assert.Empty(t, repo.created)
	})

	t.Run("admits adjacent slot on held equipment", func(t *testing.T) {
		repo := &fakeRepo{
			active: []Occupied{{EquipmentID: 1, UserID: "u1", Start: 510, End: 525}},
		}
		svc := NewService(repo, newTestCatalog(t), zerolog.Nop())

		res, err := svc.Create(ctx, CreateRequest{UserID: "u2", EquipmentID: 1, TimeSlotID: 12})

		require.NoError(t, err)
		assert.Equal(t, "08:45", res.SlotLabel)
	})

	t.Run("rejects maintenance equipment", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, newTestCatalog(t), zerolog.Nop())

		_, err := svc.Create(ctx, CreateRequest{UserID: "u1", EquipmentID: 3, TimeSlotID: 11})

		assert.ErrorIs(t, err, ErrMaintenance)
		assert.Empty(t, repo.created)
	})

	t.Run("unknown time slot", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, newTestCatalog(t), zerolog.Nop())

		_, err := svc.Create(ctx, CreateRequest{UserID: "u1", EquipmentID: 1, TimeSlotID: 99})

		assert.ErrorIs(t, err, ErrUnknownTimeSlot)
	})

	t.Run("unknown equipment", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, newTestCatalog(t), zerolog.Nop())

		_, err := svc.Create(ctx, CreateRequest{UserID: "u1", EquipmentID: 99, TimeSlotID: 11})

		assert.ErrorIs(t, err, ErrUnknownEquipment)
	})

	t.Run("missing user id", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, newTestCatalog(t), zerolog.Nop())

		_, err := svc.Create(ctx, CreateRequest{UserID: "  ", EquipmentID: 1, TimeSlotID: 11})

		assert.ErrorIs(t, err, ErrMissingUser)
	})

	t.Run("store conflict surfaces after advisory admit", func(t *testing.T) {
		// A racing insert slipped past the snapshot check; the conditional
		// insert reports the conflict instead.
		repo := &fakeRepo{createErr: ErrEquipmentOverlap}
		svc := NewService(repo, newTestCatalog(t), zerolog.Nop())

		_, err := svc.Create(ctx, CreateRequest{UserID: "u1", EquipmentID: 1, TimeSlotID: 11})

		assert.ErrorIs(t, err, ErrEquipmentOverlap)
	})
}
