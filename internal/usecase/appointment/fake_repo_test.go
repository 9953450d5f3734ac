package appointment

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/plan"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory store. Inserts enforce one occupying appointment
// per salon, date and time, and transactions are serialized and rolled back
// on error.
type fakeRepo struct {
	mu   sync.Mutex
	txMu sync.Mutex

	salons   map[uint]*models.Salon
	services map[uint]models.Service
	appts    map[uint]models.Appointment
	txns     map[uint]models.Transaction
	nextID   uint

	onTransaction func(r *fakeRepo)
	hideActive    bool
	staleStatus   bool
	incomeErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons:   map[uint]*models.Salon{},
		services: map[uint]models.Service{},
		appts:    map[uint]models.Appointment{},
		txns:     map[uint]models.Transaction{},
	}
}

func (r *fakeRepo) id() uint {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) addSalon(s *models.Salon) *models.Salon {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.salons[s.ID] = s
	return s
}

func (r *fakeRepo) addService(svc models.Service) models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()
	if svc.ID == 0 {
		svc.ID = r.id()
	}
	r.services[svc.ID] = svc
	return svc
}

func (r *fakeRepo) stored(id uint) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appts[id]
}

func (r *fakeRepo) transactionsFor(appointmentID uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.txns {
		if t.AppointmentID == appointmentID {
			n++
		}
	}
	return n
}

// put stores an appointment bypassing the occupying check.
func (r *fakeRepo) put(ap models.Appointment) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == 0 {
		ap.ID = r.id()
	}
	r.appts[ap.ID] = ap
	return ap
}

// -------- Repository --------

func (r *fakeRepo) GetSalon(_ context.Context, salonID uint) (*models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.salons[salonID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.services[serviceID]
	if !ok || svc.SalonID != salonID {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (r *fakeRepo) FindOccupied(_ context.Context, salonID uint, date string) ([]schedule.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []schedule.TimeSlot
	for _, ap := range r.appts {
		if ap.SalonID == salonID && ap.Date == date && domain.Status(ap.Status).IsOccupying() {
			out = append(out, schedule.TimeSlot(ap.Time))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *fakeRepo) HasActiveAt(_ context.Context, salonID uint, date, at string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hideActive {
		return false, nil
	}
	return r.occupiedLocked(salonID, date, at), nil
}

func (r *fakeRepo) occupiedLocked(salonID uint, date, at string) bool {
	for _, ap := range r.appts {
		if ap.SalonID == salonID && ap.Date == date && ap.Time == at &&
			domain.Status(ap.Status).IsOccupying() {
			return true
		}
	}
	return false
}

func (r *fakeRepo) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.occupiedLocked(ap.SalonID, ap.Date, ap.Time) {
		return domain.ErrSlotTaken
	}
	ap.ID = r.id()
	ap.CreatedAt = time.Now()
	for i := range ap.Items {
		ap.Items[i].ID = r.id()
		ap.Items[i].AppointmentID = ap.ID
	}
	r.appts[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appts[appointmentID]
	if !ok || ap.SalonID != salonID {
		return nil, domain.ErrNotFound
	}
	ap.Service = r.services[ap.ServiceID]
	return &ap, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, ap *models.Appointment, from domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.appts[ap.ID]
	if !ok || r.staleStatus || cur.Status != string(from) {
		return domain.ErrStaleStatus
	}
	cur.Status = ap.Status
	cur.ConfirmedAt = ap.ConfirmedAt
	cur.CancelledAt = ap.CancelledAt
	cur.CompletedAt = ap.CompletedAt
	r.appts[ap.ID] = cur
	return nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, salonID uint, fromDate, toDate string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appts {
		if ap.SalonID == salonID && ap.Date >= fromDate && ap.Date < toDate {
			ap.Service = r.services[ap.ServiceID]
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *fakeRepo) RecordIncome(_ context.Context, in domain.IncomeEntry) (*models.Transaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.incomeErr != nil {
		return nil, false, r.incomeErr
	}
	for _, t := range r.txns {
		if t.AppointmentID == in.AppointmentID {
			return &t, false, nil
		}
	}
	t := models.Transaction{
		ID:            r.id(),
		SalonID:       in.SalonID,
		AppointmentID: in.AppointmentID,
		Type:          models.TransactionIncome,
		Amount:        in.Amount,
		Description:   in.Description,
	}
	r.txns[t.ID] = t
	return &t, true, nil
}

func (r *fakeRepo) Transaction(_ context.Context, fn func(tx domain.Repository) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	if r.onTransaction != nil {
		r.onTransaction(r)
	}

	r.mu.Lock()
	appts := make(map[uint]models.Appointment, len(r.appts))
	for k, v := range r.appts {
		appts[k] = v
	}
	txns := make(map[uint]models.Transaction, len(r.txns))
	for k, v := range r.txns {
		txns[k] = v
	}
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.appts = appts
		r.txns = txns
		r.mu.Unlock()
		return err
	}
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// -------- Collaborators --------

type recordingNotifier struct {
	mu  sync.Mutex
	got []domain.Notification
}

func (n *recordingNotifier) Notify(x domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, x)
}

func (n *recordingNotifier) all() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Notification(nil), n.got...)
}

type fakeLimits struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeLimits) CheckAndEnforce(_ context.Context, _ uint) (plan.Usage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return plan.Usage{}, f.err
}

func (f *fakeLimits) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, domain.Notification) error {
	return errors.New("broker unavailable")
}

// -------- Fixtures --------

// 2026-03-09 is a Monday.
var testNow = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

func fullWeek(open, close string) []models.SalonWorkingHours {
	hours := make([]models.SalonWorkingHours, 0, 7)
	for wd := 0; wd < 7; wd++ {
		hours = append(hours, models.SalonWorkingHours{
			SalonID:   1,
			Weekday:   wd,
			OpenTime:  open,
			CloseTime: close,
		})
	}
	return hours
}

func seededRepo() (*fakeRepo, models.Service) {
	repo := newFakeRepo()
	repo.addSalon(&models.Salon{
		ID:           1,
		Name:         "Studio Bela",
		Timezone:     "UTC",
		IsOpen:       true,
		Plan:         plan.TierFree,
		WorkingHours: fullWeek("08:00", "18:00"),
	})
	repo.nextID = 100
	svc := repo.addService(models.Service{SalonID: 1, Name: "Corte", Price: 50, DurationMin: 30, Active: true})
	return repo, svc
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
