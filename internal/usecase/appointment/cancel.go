package appointment

import (
	"context"
	"time"

	"github.com/lanavaja/barber-platform/internal/audit"
	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	cache domain.SlotCache
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	cache domain.SlotCache,
	audit *audit.Dispatcher,
	loc *time.Location,
	now func() time.Time,
) *CancelAppointment {
	if now == nil {
		now = time.Now
	}
	return &CancelAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
		loc:   loc,
		now:   now,
	}
}

// Execute soft-cancels an appointment. Non-admin actors are bound by the
// 24-hour rule; the row is never removed.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	isAdmin bool,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.IsActive(domain.Status(ap.Status)) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	now := uc.now().In(uc.loc)
	if err := domain.CanCancelAt(ap.StartAt(uc.loc), now, isAdmin); err != nil {
		return nil, err
	}

	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now
	ap.CancellationReason = reason

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.BarberID, ap.Date.Format("2006-01-02"))

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
