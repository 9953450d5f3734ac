package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
)

const publishTimeout = 5 * time.Second

// Publisher delivers one notification to the realtime channel.
type Publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Dispatcher queues notifications and publishes them from a single worker.
// A failed or dropped notification is logged and never reaches the caller.
type Dispatcher struct {
	publisher Publisher
	queue     chan domain.Notification
	done      chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(publisher Publisher, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		publisher: publisher,
		queue:     make(chan domain.Notification, size),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for n := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := d.publisher.Publish(ctx, n); err != nil {
			log.Error().
				Err(err).
				Str("event", string(n.EventType)).
				Uint("salon_id", n.SalonID).
				Uint("appointment_id", n.AppointmentID).
				Msg("notification publish failed")
		}
		cancel()
	}
}

func (d *Dispatcher) Notify(n domain.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.OccurredAt.IsZero() {
		n.OccurredAt = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- n:
	default:
		metrics.IncQueueDropped("notify")
		log.Warn().
			Str("event", string(n.EventType)).
			Uint("appointment_id", n.AppointmentID).
			Msg("notification queue full, dropping event")
	}
}

// Close stops accepting notifications and waits for pending ones.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

var _ domain.Notifier = (*Dispatcher)(nil)
