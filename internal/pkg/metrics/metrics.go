package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationAdmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gym_booking",
			Name:      "reservation_admitted_total",
			Help:      "Count of reservations admitted.",
		},
	)

	reservationRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gym_booking",
			Name:      "reservation_rejected_total",
			Help:      "Count of reservation requests rejected by reason.",
		},
		[]string{"reason"},
	)

	reservationCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gym_booking",
			Name:      "reservation_completed_total",
			Help:      "Count of reservations completed and archived.",
		},
	)

	reservationCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gym_booking",
			Name:      "reservation_cancelled_total",
			Help:      "Count of reservations cancelled by members.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			reservationAdmitted,
			reservationRejected,
			reservationCompleted,
			reservationCancelled,
		)
	})
}

func IncReservationAdmitted() {
	reservationAdmitted.Inc()
}

func IncReservationRejected(reason string) {
	reservationRejected.WithLabelValues(reason).Inc()
}

func IncReservationCompleted() {
	reservationCompleted.Inc()
}

func IncReservationCancelled() {
	reservationCancelled.Inc()
}
