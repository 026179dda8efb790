package appointment

import (
	"context"
	"time"

	"github.com/lanavaja/barber-platform/internal/audit"
	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/models"
)

// UpdateAppointmentInput is a partial patch; nil fields are untouched.
// Status changes to CANCELLED or COMPLETED do not go through here, they
// have dedicated use cases.
type UpdateAppointmentInput struct {
	Date          *string
	Time          *string
	Notes         *string
	Status        *string
	PaymentStatus *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	cache domain.SlotCache
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	cache domain.SlotCache,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
		loc:   loc,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	oldDate := ap.Date.Format("2006-01-02")

	if in.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *in.Date, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.Date = date
	}

	if in.Time != nil {
		if _, err := time.Parse("15:04", *in.Time); err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		ap.Time = *in.Time
	}

	// A reschedule deliberately keeps the already-sent notification flags:
	// a window that fired stays fired for this appointment.

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.Status != nil {
		st := domain.Status(*in.Status)
		if !domain.IsValidStatus(st) ||
			st == domain.StatusCancelled || st == domain.StatusCompleted {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		ap.Status = string(st)
	}

	if in.PaymentStatus != nil {
		ap.PaymentStatus = *in.PaymentStatus
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.BarberID, oldDate)
	if newDate := ap.Date.Format("2006-01-02"); newDate != oldDate {
		uc.cache.Invalidate(ctx, ap.BarberID, newDate)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
