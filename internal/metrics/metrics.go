package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salon_scheduler"

var (
	once sync.Once

	bookingAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_attempts_total",
			Help:      "Booking attempts by outcome (created, conflict, validation, error).",
		},
		[]string{"outcome"},
	)

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_transitions_total",
			Help:      "Appointment status transitions applied.",
		},
		[]string{"from", "to"},
	)

	planClosures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_closures_total",
			Help:      "Salons closed automatically after reaching the plan ceiling.",
		},
	)

	queueDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_dropped_total",
			Help:      "Events dropped because a background queue was full.",
		},
		[]string{"queue"},
	)

	incomeRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "income_recorded_total",
			Help:      "Income transactions written to the ledger.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingAttempts,
			transitions,
			planClosures,
			queueDropped,
			incomeRecorded,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncBookingAttempt(outcome string) {
	bookingAttempts.WithLabelValues(outcome).Inc()
}

func IncTransition(from, to string) {
	transitions.WithLabelValues(from, to).Inc()
}

func IncPlanClosure() {
	planClosures.Inc()
}

func IncQueueDropped(queue string) {
	queueDropped.WithLabelValues(queue).Inc()
}

func IncIncomeRecorded() {
	incomeRecorded.Inc()
}
