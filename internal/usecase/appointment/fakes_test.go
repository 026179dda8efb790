package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/audit"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/models"
)

type fakeRepo struct {
	users        map[uint]*models.User
	services     map[uint]*models.Service
	availability map[int]*models.Availability
	daysOff      map[string]bool
	booked       map[string][]string
	appointments map[uint]*models.Appointment
	updated      []uint
	createErr    error
	availErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		services:     map[uint]*models.Service{},
		availability: map[int]*models.Availability{},
		daysOff:      map[string]bool{},
		booked:       map[string][]string{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (r *fakeRepo) GetAvailability(_ context.Context, _ uint, weekday int) (*models.Availability, error) {
	if r.availErr != nil {
		return nil, r.availErr
	}
	return r.availability[weekday], nil
}

func (r *fakeRepo) HasDayOff(_ context.Context, _ uint, date time.Time) (bool, error) {
	return r.daysOff[date.Format("2006-01-02")], nil
}

func (r *fakeRepo) ListBookedTimes(_ context.Context, _ uint, date time.Time) ([]string, error) {
	return r.booked[date.Format("2006-01-02")], nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = uint(len(r.appointments) + 1)
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		return ap, nil
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = ap
	r.updated = append(r.updated, ap.ID)
	return nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, _ uint, _, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeRepo) ListAppointmentsForClient(_ context.Context, _ uint) ([]models.Appointment, error) {
	return nil, nil
}

type fakeCache struct {
	entries     map[string][]string
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]string{}}
}

func cacheKey(barberID uint, date string) string {
	return date
}

func (c *fakeCache) Get(_ context.Context, barberID uint, date string) ([]string, bool) {
	slots, ok := c.entries[cacheKey(barberID, date)]
	return slots, ok
}

func (c *fakeCache) Set(_ context.Context, barberID uint, date string, slots []string) {
	c.entries[cacheKey(barberID, date)] = slots
}

func (c *fakeCache) Invalidate(_ context.Context, barberID uint, date string) {
	delete(c.entries, cacheKey(barberID, date))
	c.invalidated = append(c.invalidated, date)
}

type fakeInvoices struct {
	created map[uint]*models.Invoice
	calls   int
	err     error
}

func newFakeInvoices() *fakeInvoices {
	return &fakeInvoices{created: map[uint]*models.Invoice{}}
}

func (f *fakeInvoices) CreateForAppointment(_ context.Context, ap *models.Appointment) (*models.Invoice, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if inv, ok := f.created[ap.ID]; ok {
		return inv, nil
	}
	apID := ap.ID
	inv := &models.Invoice{
		Number:        "INV-2024-0001",
		Kind:          models.InvoiceKindClientService,
		AppointmentID: &apID,
	}
	f.created[ap.ID] = inv
	return inv, nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
