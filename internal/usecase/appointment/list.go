package appointment

import (
	"context"
	"time"

	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(repo domain.Repository, loc *time.Location) *ListAppointments {
	return &ListAppointments{repo: repo, loc: loc}
}

func (uc *ListAppointments) ForBarberOnDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.loc)
	end := start.Add(24 * time.Hour)

	return uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
}

func (uc *ListAppointments) ForBarberInMonth(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]models.Appointment, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
}

func (uc *ListAppointments) ForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForClient(ctx, clientID)
}
