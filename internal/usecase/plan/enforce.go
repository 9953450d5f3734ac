package plan

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/plan"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Enforcer counts a salon's appointments for the current billing month and
// closes the salon once its plan ceiling is reached.
type Enforcer struct {
	repo     salon.Repository
	registry plan.Registry
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewEnforcer(
	repo salon.Repository,
	registry plan.Registry,
	audit *audit.Dispatcher,
) *Enforcer {
	return &Enforcer{
		repo:     repo,
		registry: registry,
		audit:    audit,
		now:      time.Now,
	}
}

// Usage reports the month's consumption without side effects.
func (e *Enforcer) Usage(
	ctx context.Context,
	salonID uint,
) (plan.Usage, error) {

	s, err := e.repo.GetSalon(ctx, salonID)
	if err != nil {
		return plan.Usage{}, err
	}

	from, to := timezone.MonthBounds(e.now().In(timezone.Location(s.Timezone)))

	count, err := e.repo.CountAppointmentsCreatedBetween(ctx, salonID, from, to)
	if err != nil {
		return plan.Usage{}, err
	}

	return plan.Evaluate(count, e.registry.GetPlanLimits(s.Plan)), nil
}

// CheckAndEnforce closes the salon when the ceiling is reached. Closing an
// already closed salon writes nothing.
func (e *Enforcer) CheckAndEnforce(
	ctx context.Context,
	salonID uint,
) (plan.Usage, error) {

	usage, err := e.Usage(ctx, salonID)
	if err != nil {
		return plan.Usage{}, err
	}
	if !usage.LimitReached {
		return usage, nil
	}

	changed, err := e.repo.SetSalonOpen(ctx, salonID, false)
	if err != nil {
		return usage, err
	}

	if changed {
		metrics.IncPlanClosure()
		e.audit.Dispatch(audit.Event{
			SalonID:  salonID,
			Action:   "salon_closed_plan_limit",
			Entity:   "salon",
			EntityID: &salonID,
			Metadata: usage,
		})
	}

	return usage, nil
}
