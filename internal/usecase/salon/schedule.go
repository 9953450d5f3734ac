package salon

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ======================================================
// GET
// ======================================================

type GetSchedule struct {
	repo salon.Repository
}

func NewGetSchedule(repo salon.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

func (uc *GetSchedule) Execute(
	ctx context.Context,
	salonID uint,
) (schedule.Schedule, error) {

	s, err := uc.repo.GetSalon(ctx, salonID)
	if err != nil {
		return schedule.Schedule{}, notFound(err)
	}
	return salon.ScheduleOf(s), nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateSchedule struct {
	repo  salon.Repository
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo salon.Repository,
	audit *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the salon's weekly schedule and special dates. The stored
// schedule is the normalized form.
func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	salonID uint,
	adminID uint,
	in schedule.Schedule,
) (schedule.Schedule, error) {

	normalized, err := in.Validate()
	if err != nil {
		return schedule.Schedule{}, &domain.ValidationError{
			Reason: domain.ReasonInvalidSchedule,
			Err:    err,
		}
	}

	if _, err := uc.repo.GetSalon(ctx, salonID); err != nil {
		return schedule.Schedule{}, notFound(err)
	}

	hours, specials := salon.RowsFor(salonID, normalized)
	if err := uc.repo.ReplaceSchedule(ctx, salonID, hours, specials); err != nil {
		return schedule.Schedule{}, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		ActorID:  &adminID,
		Action:   "schedule_updated",
		Entity:   "salon",
		EntityID: &salonID,
		Metadata: normalized,
	})

	return normalized, nil
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeSalonNotFound)
	}
	return err
}
