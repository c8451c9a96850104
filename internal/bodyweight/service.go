package bodyweight

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	"github.com/rnwgym/gym-booking-backend/internal/reservation"
)

type CreateRequest struct {
	UserID       string
	TimeSlotID   int64
	ExerciseName string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, error)
	MarkDone(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo            Repository
	reservationRepo reservation.Repository
	catalog         catalog.Service
	log             zerolog.Logger
}

func NewService(repo Repository, reservationRepo reservation.Repository, catalogService catalog.Service, log zerolog.Logger) Service {
	return &service{
		repo:            repo,
		reservationRepo: reservationRepo,
		catalog:         catalogService,
		log:             log,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if strings.TrimSpace(req.UserID) == "" ||
		strings.TrimSpace(req.ExerciseName) == "" ||
		req.TimeSlotID == 0 {
		return nil, ErrMissingFields
	}

	slot, err := s.catalog.SlotByID(req.TimeSlotID)
	if err != nil {
		return nil, ErrUnknownTimeSlot
	}

	// Advisory check: the member must be free across equipment and
	// bodyweight reservations. The store transaction is the authoritative
	// guard.
	active, err := s.reservationRepo.ActiveForConflict(ctx, 0, req.UserID)
	if err != nil {
		return nil, err
	}
	if !reservation.UserFree(req.UserID, slot.StartMinutes(), slot.EndMinutes(), active) {
		return nil, ErrUserDoubleBooked
	}

	res := &Reservation{
		ExerciseName: strings.TrimSpace(req.ExerciseName),
		TimeSlotID:   req.TimeSlotID,
		SlotLabel:    slot.Label(),
		UserID:       req.UserID,
	}
	if err := s.repo.CreateExclusive(ctx, res); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("reservation_id", res.ID).
		Str("user_id", res.UserID).
		Str("exercise", res.ExerciseName).
		Str("slot", res.SlotLabel).
		Msg("bodyweight reservation created")

	return res, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) MarkDone(ctx context.Context, id string) error {
	return s.repo.MarkDone(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
