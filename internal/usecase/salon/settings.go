package salon

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/plan"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// UsageReader reports the salon's consumption of its plan.
type UsageReader interface {
	Usage(ctx context.Context, salonID uint) (plan.Usage, error)
}

// ======================================================
// GET SALON
// ======================================================

type GetSalon struct {
	repo salon.Repository
}

func NewGetSalon(repo salon.Repository) *GetSalon {
	return &GetSalon{repo: repo}
}

func (uc *GetSalon) Execute(ctx context.Context, salonID uint) (*models.Salon, error) {
	s, err := uc.repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// ======================================================
// OPEN / CLOSE
// ======================================================

type SetOpen struct {
	repo  salon.Repository
	usage UsageReader
	audit *audit.Dispatcher
}

func NewSetOpen(
	repo salon.Repository,
	usage UsageReader,
	audit *audit.Dispatcher,
) *SetOpen {
	return &SetOpen{
		repo:  repo,
		usage: usage,
		audit: audit,
	}
}

// Execute toggles bookings. Reopening is refused while the month's usage is
// at the plan ceiling.
func (uc *SetOpen) Execute(
	ctx context.Context,
	salonID uint,
	adminID uint,
	open bool,
) error {

	if open {
		u, err := uc.usage.Usage(ctx, salonID)
		if err != nil {
			return notFound(err)
		}
		if u.LimitReached {
			return httperr.ErrBusiness(httperr.CodePlanLimitReached)
		}
	}

	changed, err := uc.repo.SetSalonOpen(ctx, salonID, open)
	if err != nil {
		return err
	}

	if changed {
		action := "salon_closed"
		if open {
			action = "salon_opened"
		}
		uc.audit.Dispatch(audit.Event{
			SalonID:  salonID,
			ActorID:  &adminID,
			Action:   action,
			Entity:   "salon",
			EntityID: &salonID,
		})
	}

	return nil
}

// ======================================================
// PLAN
// ======================================================

type ChangePlan struct {
	repo  salon.Repository
	audit *audit.Dispatcher
}

func NewChangePlan(
	repo salon.Repository,
	audit *audit.Dispatcher,
) *ChangePlan {
	return &ChangePlan{
		repo:  repo,
		audit: audit,
	}
}

// Execute switches the salon's tier. A salon closed by the limit stays
// closed until its owner reopens it.
func (uc *ChangePlan) Execute(
	ctx context.Context,
	salonID uint,
	actorID uint,
	tier string,
) error {

	tier = strings.ToLower(strings.TrimSpace(tier))
	if !plan.IsKnown(tier) {
		return httperr.ErrBusiness(httperr.CodeUnknownPlan)
	}

	if err := uc.repo.UpdatePlan(ctx, salonID, tier); err != nil {
		return notFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		ActorID:  &actorID,
		Action:   "plan_changed",
		Entity:   "salon",
		EntityID: &salonID,
		Metadata: map[string]string{"plan": tier},
	})

	return nil
}
