package appointment

import (
	"context"
	"time"

	"github.com/lanavaja/barber-platform/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability --------
	// GetAvailability returns (nil, nil) when the barber has no schedule
	// row for the weekday.
	GetAvailability(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.Availability, error)

	HasDayOff(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) (bool, error)

	ListBookedTimes(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]string, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointment checks the slot and inserts inside one transaction;
	// an occupied slot yields ErrBusiness("time_conflict").
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}

// InvoiceCreator issues the client invoice for a completed appointment.
// Implemented by the invoicing usecase; idempotent per appointment.
type InvoiceCreator interface {
	CreateForAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) (*models.Invoice, error)
}

// SlotCache fronts the availability calculation; entries are invalidated
// whenever a booking mutates the barber's day.
type SlotCache interface {
	Get(ctx context.Context, barberID uint, date string) ([]string, bool)
	Set(ctx context.Context, barberID uint, date string, slots []string)
	Invalidate(ctx context.Context, barberID uint, date string)
}
