package assistant

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/middleware"
	"github.com/lanavaja/barber-platform/internal/models"
	ucAppointment "github.com/lanavaja/barber-platform/internal/usecase/appointment"
)

// DefaultOps backs the assistant's tool calls with the same use cases the
// REST handlers run.
type DefaultOps struct {
	db           *gorm.DB
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	loc          *time.Location
}

func NewDefaultOps(
	db *gorm.DB,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	loc *time.Location,
) *DefaultOps {
	return &DefaultOps{
		db:           db,
		availability: availability,
		create:       create,
		loc:          loc,
	}
}

func (o *DefaultOps) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := o.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&services).Error
	return services, err
}

func (o *DefaultOps) ListBarbers(ctx context.Context) ([]models.User, error) {
	var barbers []models.User
	err := o.db.WithContext(ctx).
		Where("role = ? AND active = true", middleware.RoleBarber).
		Order("name ASC").
		Find(&barbers).Error
	return barbers, err
}

func (o *DefaultOps) CheckAvailability(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	day, err := time.ParseInLocation("2006-01-02", date, o.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return o.availability.Execute(ctx, barberID, day)
}

func (o *DefaultOps) CreateAppointment(
	ctx context.Context,
	clientID, barberID, serviceID uint,
	date, timeHM string,
) (*models.Appointment, error) {

	return o.create.Execute(ctx, ucAppointment.CreateAppointmentInput{
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
		Time:      timeHM,
	})
}

var _ Ops = (*DefaultOps)(nil)
