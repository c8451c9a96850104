package reservation

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	"github.com/rnwgym/gym-booking-backend/internal/pkg/metrics"
)

type CreateRequest struct {
	UserID      string
	EquipmentID int64
	TimeSlotID  int64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, error)
	Complete(ctx context.Context, id string) (*Reservation, error)
	Cancel(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	catalog catalog.Service
	log     zerolog.Logger
}

func NewService(repo Repository, catalogService catalog.Service, log zerolog.Logger) Service {
	return &service{
		repo:    repo,
		catalog: catalogService,
		log:     log,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, ErrMissingUser
	}

	// 1. Resolve reference data
	slot, err := s.catalog.SlotByID(req.TimeSlotID)
	if err != nil {
		return nil, ErrUnknownTimeSlot
	}

	equipment, err := s.catalog.EquipmentByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, catalog.ErrEquipmentNotFound) {
			return nil, ErrUnknownEquipment
		}
		return nil, err
	}

	// 2. Advisory conflict check over a snapshot of the active set
	active, err := s.repo.ActiveForConflict(ctx, req.EquipmentID, req.UserID)
	if err != nil {
		return nil, err
	}

	candidate := Candidate{
		EquipmentID: req.EquipmentID,
		UserID:      req.UserID,
		Start:       slot.StartMinutes(),
		End:         slot.EndMinutes(),
	}
	decision := Check(candidate, equipment.Maintenance, active)
	if !decision.Admitted {
		metrics.IncReservationRejected(string(decision.Reason))
		return nil, reasonError(decision.Reason)
	}

	// 3. Authoritative conditional insert; a race that slipped past the
	// snapshot check surfaces here as the same conflict error.
	res := &Reservation{
		EquipmentID:   req.EquipmentID,
		EquipmentName: equipment.Name,
		TimeSlotID:    req.TimeSlotID,
		SlotLabel:     slot.Label(),
		UserID:        req.UserID,
	}
	if err := s.repo.CreateExclusive(ctx, res); err != nil {
		if errors.Is(err, ErrEquipmentOverlap) {
			metrics.IncReservationRejected(string(ReasonEquipmentOverlap))
		} else if errors.Is(err, ErrUserDoubleBooked) {
			metrics.IncReservationRejected(string(ReasonUserDoubleBooking))
		}
		return nil, err
	}

	metrics.IncReservationAdmitted()
	s.log.Info().
		Str("reservation_id", res.ID).
		Str("user_id", res.UserID).
		Str("equipment", res.EquipmentName).
		Str("slot", res.SlotLabel).
		Msg("reservation admitted")

	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Complete(ctx context.Context, id string) (*Reservation, error) {
	res, err := s.repo.Complete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.IncReservationCompleted()
	s.log.Info().
		Str("reservation_id", res.ID).
		Str("user_id", res.UserID).
		Msg("reservation completed and archived")

	return res, nil
}

func (s *service) Cancel(ctx context.Context, id string) error {
	if err := s.repo.Cancel(ctx, id); err != nil {
		return err
	}

	metrics.IncReservationCancelled()
	s.log.Info().Str("reservation_id", id).Msg("reservation cancelled")
	return nil
}

// reasonError maps a rejection reason to its module error.
func reasonError(reason Reason) error {
	switch reason {
	case ReasonMaintenance:
		return ErrMaintenance
	case ReasonEquipmentOverlap:
		return ErrEquipmentOverlap
	case ReasonUserDoubleBooking:
		return ErrUserDoubleBooked
	default:
		return ErrEquipmentOverlap
	}
}
