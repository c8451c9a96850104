package occupancy

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/rnwgym/gym-booking-backend/internal/catalog"
	"github.com/rnwgym/gym-booking-backend/internal/reservation"
)

const zoneCountsKey = "zone_counts"

type Service interface {
	// ZoneCounts aggregates active reservations per zone. Every known zone
	// is present in the result, zero-filled when idle. Results may be stale
	// by up to the configured TTL.
	ZoneCounts(ctx context.Context) ([]ZoneCount, error)

	// AllSlotsFull reports whether the member holds an active reservation
	// (equipment or bodyweight) for every slot in the catalog.
	AllSlotsFull(ctx context.Context, userID string) (bool, error)
}

type service struct {
	reservations reservation.Repository
	catalog      catalog.Service
	cache        *cache.Cache
	ttl          time.Duration
}

func NewService(reservations reservation.Repository, catalogService catalog.Service, store *cache.Cache, ttl time.Duration) Service {
	return &service{
		reservations: reservations,
		catalog:      catalogService,
		cache:        store,
		ttl:          ttl,
	}
}

func (s *service) ZoneCounts(ctx context.Context) ([]ZoneCount, error) {
	if cached, found := s.cache.Get(zoneCountsKey); found {
		return cached.([]ZoneCount), nil
	}

	// The active set is bounded by equipment x slot cardinality, so a full
	// recomputation per read is cheaper than incremental bookkeeping.
	active, err := s.reservations.List(ctx, reservation.Filter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(Zones))
	for _, zone := range Zones {
		counts[zone] = 0
	}
	for _, r := range active {
		if zone, ok := ZoneForEquipment(r.EquipmentName); ok {
			counts[zone]++
		}
	}

	result := make([]ZoneCount, len(Zones))
	for i, zone := range Zones {
		result[i] = ZoneCount{Zone: zone, Count: counts[zone]}
	}

	s.cache.Set(zoneCountsKey, result, s.ttl)
	return result, nil
}

func (s *service) AllSlotsFull(ctx context.Context, userID string) (bool, error) {
	slots := s.catalog.Slots()
	if len(slots) == 0 {
		return false, nil
	}

	slotIDs, err := s.reservations.ActiveSlotIDsByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	held := make(map[int64]bool, len(slotIDs))
	for _, id := range slotIDs {
		held[id] = true
	}

	for _, slot := range slots {
		if !held[slot.ID] {
			return false, nil
		}
	}
	return true, nil
}
