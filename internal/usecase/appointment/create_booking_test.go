package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func newTestBooking(repo *fakeRepo, n domain.Notifier, limits LimitEnforcer) *CreateBooking {
	uc := NewCreateBooking(repo, nil, n, limits, domain.DefaultSettings())
	uc.now = fixedClock(testNow)
	return uc
}

func bookingInput(serviceID uint, at string) CreateBookingInput {
	return CreateBookingInput{
		SalonID:   1,
		ServiceID: serviceID,
		ClientID:  7,
		Date:      "2026-03-10",
		Time:      at,
	}
}

func TestCreateBooking_SecondRequestForSameSlotConflicts(t *testing.T) {
	repo, svc := seededRepo()
	notifier := &recordingNotifier{}
	limits := &fakeLimits{}
	uc := newTestBooking(repo, notifier, limits)

	ap, err := uc.Execute(context.Background(), bookingInput(svc.ID, "09:00"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "2026-03-10", ap.Date)
	assert.Equal(t, "09:00", ap.Time)
	assert.Equal(t, "Corte", ap.Service.Name)

	_, err = uc.Execute(context.Background(), bookingInput(svc.ID, "09:00"))
	var conflict *domain.BookingConflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ReasonAlreadyTaken, conflict.Reason)

	notes := notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, domain.RecipientAdmin, notes[0].RecipientRole)
	assert.Equal(t, domain.EventBookingCreated, notes[0].EventType)
	assert.Equal(t, ap.ID, notes[0].AppointmentID)

	assert.Equal(t, 1, limits.count())
}

func TestCreateBooking_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *fakeRepo, in *CreateBookingInput)
		reason  domain.ValidationReason
		field   string
	}{
		{
			name:    "missing client",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) { in.ClientID = 0 },
			reason:  domain.ReasonMissingField,
			field:   "client_id",
		},
		{
			name:    "missing time",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) { in.Time = "" },
			reason:  domain.ReasonMissingField,
			field:   "time",
		},
		{
			name:    "unknown salon",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) { in.SalonID = 99 },
			reason:  domain.ReasonSalonClosed,
			field:   "salon_id",
		},
		{
			name:    "salon closed",
			prepare: func(r *fakeRepo, _ *CreateBookingInput) { r.salons[1].IsOpen = false },
			reason:  domain.ReasonSalonClosed,
			field:   "salon_id",
		},
		{
			name: "inactive service",
			prepare: func(r *fakeRepo, in *CreateBookingInput) {
				svc := r.addService(models.Service{SalonID: 1, Name: "Escova", Active: false})
				in.ServiceID = svc.ID
			},
			reason: domain.ReasonServiceUnavailable,
			field:  "service_id",
		},
		{
			name: "service of another salon",
			prepare: func(r *fakeRepo, in *CreateBookingInput) {
				svc := r.addService(models.Service{SalonID: 2, Name: "Escova", Active: true})
				in.ServiceID = svc.ID
			},
			reason: domain.ReasonServiceUnavailable,
			field:  "service_id",
		},
		{
			name:    "unknown add-on",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) { in.AdditionalServiceIDs = []uint{9999} },
			reason:  domain.ReasonServiceUnavailable,
			field:   "additional_service_ids",
		},
		{
			name:    "off grid time",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) { in.Time = "09:15" },
			reason:  domain.ReasonSlotUnavailable,
			field:   "time",
		},
		{
			name:    "after closing",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) { in.Time = "18:00" },
			reason:  domain.ReasonSlotUnavailable,
			field:   "time",
		},
		{
			name: "inside lead time today",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) {
				in.Date = "2026-03-09"
				in.Time = "11:00"
			},
			reason: domain.ReasonSlotUnavailable,
			field:  "time",
		},
		{
			name:    "past date",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) { in.Date = "2026-03-01" },
			reason:  domain.ReasonSlotUnavailable,
			field:   "time",
		},
		{
			name:    "malformed date",
			prepare: func(_ *fakeRepo, in *CreateBookingInput) { in.Date = "amanhã" },
			reason:  domain.ReasonSlotUnavailable,
			field:   "date",
		},
		{
			name: "lunch break",
			prepare: func(r *fakeRepo, _ *CreateBookingInput) {
				for i := range r.salons[1].WorkingHours {
					wh := &r.salons[1].WorkingHours[i]
					wh.LunchEnabled = true
					wh.LunchStart = "12:00"
					wh.LunchEnd = "13:00"
				}
			},
			reason: domain.ReasonSlotUnavailable,
			field:  "time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := seededRepo()
			in := bookingInput(svc.ID, "12:30")
			tt.prepare(repo, &in)

			notifier := &recordingNotifier{}
			limits := &fakeLimits{}

			_, err := newTestBooking(repo, notifier, limits).Execute(context.Background(), in)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.reason, ve.Reason)
			assert.Equal(t, tt.field, ve.Field)

			assert.Empty(t, notifier.all())
			assert.Zero(t, limits.count())
			assert.Empty(t, repo.appts)
		})
	}
}

func TestCreateBooking_RecheckUnderLockCatchesStaleRead(t *testing.T) {
	repo, svc := seededRepo()

	// another client commits between the availability read and our transaction
	repo.onTransaction = func(r *fakeRepo) {
		r.put(models.Appointment{SalonID: 1, ServiceID: svc.ID, ClientID: 8, Date: "2026-03-10", Time: "10:00", Status: "pending"})
		r.onTransaction = nil
	}

	_, err := newTestBooking(repo, nil, nil).Execute(context.Background(), bookingInput(svc.ID, "10:00"))
	assert.True(t, domain.IsConflict(err))
	assert.Len(t, repo.appts, 1)
}

func TestCreateBooking_StorageGuardMapsToConflict(t *testing.T) {
	repo, svc := seededRepo()
	repo.hideActive = true
	repo.onTransaction = func(r *fakeRepo) {
		r.put(models.Appointment{SalonID: 1, ServiceID: svc.ID, ClientID: 8, Date: "2026-03-10", Time: "10:00", Status: "confirmed"})
		r.onTransaction = nil
	}

	_, err := newTestBooking(repo, nil, nil).Execute(context.Background(), bookingInput(svc.ID, "10:00"))

	var conflict *domain.BookingConflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ReasonAlreadyTaken, conflict.Reason)
	assert.Equal(t, "10:00", conflict.Time)
}

func TestCreateBooking_ConcurrentRequestsYieldOneBooking(t *testing.T) {
	repo, svc := seededRepo()
	uc := newTestBooking(repo, &recordingNotifier{}, &fakeLimits{})

	const clients = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	start := make(chan struct{})
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(clientID uint) {
			defer wg.Done()
			<-start

			in := bookingInput(svc.ID, "15:00")
			in.ClientID = clientID
			_, err := uc.Execute(context.Background(), in)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case domain.IsConflict(err):
				conflicts++
			}
		}(uint(i + 1))
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, clients-1, conflicts)

	occupied, err := repo.FindOccupied(context.Background(), 1, "2026-03-10")
	require.NoError(t, err)
	assert.Len(t, occupied, 1)
}

func TestCreateBooking_SnapshotsAddOns(t *testing.T) {
	repo, svc := seededRepo()
	beard := repo.addService(models.Service{SalonID: 1, Name: "Barba", Price: 25, DurationMin: 20, Active: true})
	wash := repo.addService(models.Service{SalonID: 1, Name: "Lavagem", Price: 10.5, DurationMin: 10, Active: true})

	in := bookingInput(svc.ID, "11:00")
	in.Notes = "cliente novo"
	in.AdditionalServiceIDs = []uint{beard.ID, wash.ID}

	ap, err := newTestBooking(repo, nil, nil).Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, ap.Items, 2)
	assert.Equal(t, "Barba", ap.Items[0].Name)
	assert.Equal(t, 1, ap.Items[1].Position)
	assert.InDelta(t, 85.5, domain.Total(ap), 0.001)
	assert.Equal(t, 60, domain.Duration(ap))
	assert.Equal(t, "cliente novo", repo.stored(ap.ID).Notes)
}

func TestCreateBooking_EnforcerFailureKeepsBooking(t *testing.T) {
	repo, svc := seededRepo()
	limits := &fakeLimits{err: errors.New("count failed")}

	ap, err := newTestBooking(repo, nil, limits).Execute(context.Background(), bookingInput(svc.ID, "16:30"))
	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
	assert.Equal(t, 1, limits.count())
}

func TestCreateBooking_NormalizesTime(t *testing.T) {
	repo, svc := seededRepo()

	ap, err := newTestBooking(repo, nil, nil).Execute(context.Background(), bookingInput(svc.ID, "9:30"))
	require.NoError(t, err)
	assert.Equal(t, "09:30", ap.Time)
}
