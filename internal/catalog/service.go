package catalog

import (
	"context"
	"sort"
)

type Service interface {
	// LoadSlots reads the time-slot grid once at startup. The snapshot is
	// immutable afterwards and safe for concurrent reads.
	LoadSlots(ctx context.Context) error

	Slots() []TimeSlot
	SlotByID(id int64) (TimeSlot, error)

	MuscleGroups(ctx context.Context) ([]*MuscleGroup, error)
	MuscleGroupByName(ctx context.Context, name string) (*MuscleGroup, error)
	Equipment(ctx context.Context) ([]*Equipment, error)
	EquipmentByGroup(ctx context.Context, muscleGroupID int64) ([]*Equipment, error)
	EquipmentByID(ctx context.Context, id int64) (*Equipment, error)
	SetMaintenance(ctx context.Context, equipmentID int64, maintenance bool) error
}

type service struct {
	repo Repository

	slots    []TimeSlot
	slotByID map[int64]TimeSlot
}

func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		slotByID: make(map[int64]TimeSlot),
	}
}

func (s *service) LoadSlots(ctx context.Context) error {
	slots, err := s.repo.ListTimeSlots(ctx)
	if err != nil {
		return err
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartMinutes() < slots[j].StartMinutes()
	})

	byID := make(map[int64]TimeSlot, len(slots))
	for _, t := range slots {
		byID[t.ID] = t
	}

	s.slots = slots
	s.slotByID = byID
	return nil
}

func (s *service) Slots() []TimeSlot {
	return s.slots
}

func (s *service) SlotByID(id int64) (TimeSlot, error) {
	t, ok := s.slotByID[id]
	if !ok {
		return TimeSlot{}, ErrTimeSlotNotFound
	}
	return t, nil
}

func (s *service) MuscleGroups(ctx context.Context) ([]*MuscleGroup, error) {
	return s.repo.ListMuscleGroups(ctx)
}

func (s *service) MuscleGroupByName(ctx context.Context, name string) (*MuscleGroup, error) {
	return s.repo.GetMuscleGroupByName(ctx, name)
}

func (s *service) Equipment(ctx context.Context) ([]*Equipment, error) {
	return s.repo.ListEquipment(ctx)
}

func (s *service) EquipmentByGroup(ctx context.Context, muscleGroupID int64) ([]*Equipment, error) {
	return s.repo.ListEquipmentByGroup(ctx, muscleGroupID)
}

func (s *service) EquipmentByID(ctx context.Context, id int64) (*Equipment, error) {
	return s.repo.GetEquipmentByID(ctx, id)
}

func (s *service) SetMaintenance(ctx context.Context, equipmentID int64, maintenance bool) error {
	// Check existence
	if _, err := s.repo.GetEquipmentByID(ctx, equipmentID); err != nil {
		return err
	}
	return s.repo.SetMaintenance(ctx, equipmentID, maintenance)
}
