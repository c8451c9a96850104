package suggest

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	"github.com/rnwgym/gym-booking-backend/internal/integrations/gemini"
	"github.com/rnwgym/gym-booking-backend/internal/reservation"
)

type Service interface {
	// Alternatives lists every machine in the muscle group with its
	// availability for the slot, plus static bodyweight exercises and,
	// when the generation backend answers in time, short AI tips.
	Alternatives(ctx context.Context, muscleGroup string, timeSlotID int64) (*Alternatives, error)

	// Quote returns a short motivational quote, generated when possible
	// and served from a static pool otherwise.
	Quote(ctx context.Context) string
}

type service struct {
	catalog      catalog.Service
	reservations reservation.Repository
	ai           *gemini.Client
	log          zerolog.Logger
}

func NewService(catalogService catalog.Service, reservations reservation.Repository, ai *gemini.Client, log zerolog.Logger) Service {
	return &service{
		catalog:      catalogService,
		reservations: reservations,
		ai:           ai,
		log:          log.With().Str("component", "suggest").Logger(),
	}
}

func (s *service) Alternatives(ctx context.Context, muscleGroup string, timeSlotID int64) (*Alternatives, error) {
	group, err := s.catalog.MuscleGroupByName(ctx, muscleGroup)
	if err != nil {
		if errors.Is(err, catalog.ErrMuscleGroupNotFound) {
			return nil, ErrUnknownMuscleGroup
		}
		return nil, fmt.Errorf("look up muscle group: %w", err)
	}

	slot, err := s.catalog.SlotByID(timeSlotID)
	if err != nil {
		return nil, ErrUnknownTimeSlot
	}

	equipment, err := s.catalog.EquipmentByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	ids := make([]int64, 0, len(equipment))
	for _, e := range equipment {
		ids = append(ids, e.ID)
	}

	occupied, err := s.reservations.ActiveByEquipmentIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}

	start, end := slot.StartMinutes(), slot.EndMinutes()
	options := make([]EquipmentOption, 0, len(equipment))
	for _, e := range equipment {
		available := !e.Maintenance && reservation.EquipmentFree(e.ID, start, end, occupied)
		options = append(options, EquipmentOption{
			EquipmentID: e.ID,
			Name:        e.Name,
			Available:   available,
		})
	}

	out := &Alternatives{
		MuscleGroup: group.Name,
		TimeSlotID:  slot.ID,
		SlotLabel:   slot.Label(),
		Equipment:   options,
		Bodyweight:  BodyweightFor(group.Name),
	}

	// AI tips are additive. Any failure leaves the response intact.
	if tips, err := s.generateTips(ctx, group.Name, options); err == nil {
		out.AITips = tips
	}

	return out, nil
}

func (s *service) generateTips(ctx context.Context, muscleGroup string, options []EquipmentOption) (string, error) {
	if !s.ai.Enabled() {
		return "", gemini.ErrDisabled
	}

	var free []string
	for _, o := range options {
		if o.Available {
			free = append(free, o.Name)
		}
	}

	prompt := fmt.Sprintf(
		"Suggest a short alternative workout plan for the %s muscle group. Available machines: %s. Answer in at most three sentences.",
		muscleGroup, strings.Join(free, ", "),
	)
	if len(free) == 0 {
		prompt = fmt.Sprintf(
			"All %s machines are busy. Suggest a short bodyweight-only workout for that muscle group in at most three sentences.",
			muscleGroup,
		)
	}

	tips, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		if !errors.Is(err, gemini.ErrDisabled) {
			s.log.Warn().Err(err).Msg("tip generation failed")
		}
		return "", err
	}
	return tips, nil
}

func (s *service) Quote(ctx context.Context) string {
	if s.ai.Enabled() {
		quote, err := s.ai.GenerateText(ctx, "Give one short motivational gym quote. Answer with the quote only.")
		if err == nil {
			return quote
		}
		s.log.Warn().Err(err).Msg("quote generation failed")
	}
	return fallbackQuotes[rand.Intn(len(fallbackQuotes))]
}
