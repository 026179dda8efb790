package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/audit"
	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/models"
)

// CompleteResult separates the primary outcome (the status change) from
// the invoice side effect: InvoiceErr is reported here and logged, never
// propagated as a failure of the completion itself.
type CompleteResult struct {
	Appointment *models.Appointment
	Invoice     *models.Invoice
	InvoiceErr  error
}

type CompleteAppointment struct {
	repo     domain.Repository
	invoices domain.InvoiceCreator
	audit    *audit.Dispatcher
	log      *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	invoices domain.InvoiceCreator,
	audit *audit.Dispatcher,
	log *zap.Logger,
	loc *time.Location,
	now func() time.Time,
) *CompleteAppointment {
	if now == nil {
		now = time.Now
	}
	return &CompleteAppointment{
		repo:     repo,
		invoices: invoices,
		audit:    audit,
		log:      log,
		loc:      loc,
		now:      now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
) (*CompleteResult, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// A repeated completion PATCH is a no-op for the status but still
	// resolves the invoice idempotently.
	if domain.Status(ap.Status) != domain.StatusCompleted {
		if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
			return nil, err
		}

		now := uc.now().In(uc.loc)
		ap.Status = string(domain.StatusCompleted)
		ap.CompletedAt = &now

		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &actorID,
			Action:   "appointment_completed",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	res := &CompleteResult{Appointment: ap}

	inv, invErr := uc.invoices.CreateForAppointment(ctx, ap)
	if invErr != nil {
		uc.log.Error("invoice creation failed after completion",
			zap.Uint("appointment_id", ap.ID),
			zap.Error(invErr),
		)
		res.InvoiceErr = invErr
		return res, nil
	}

	res.Invoice = inv
	return res, nil
}
