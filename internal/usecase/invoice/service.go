package invoice

import (
	"context"
	"time"

	"github.com/lanavaja/barber-platform/internal/models"
)

// ======================================================
// PORTS
// ======================================================

type Repository interface {
	// FindByAppointment returns (nil, nil) when no invoice exists yet.
	FindByAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Invoice, error)

	// CreateNumbered assigns the next year-scoped number and inserts,
	// atomically. A concurrent duplicate number fails the insert on
	// the unique index; callers do not retry.
	CreateNumbered(
		ctx context.Context,
		inv *models.Invoice,
		year int,
	) error

	ListInvoices(
		ctx context.Context,
	) ([]models.Invoice, error)

	GetInvoice(
		ctx context.Context,
		id uint,
	) (*models.Invoice, error)

	MarkPaid(
		ctx context.Context,
		id uint,
		paidAt time.Time,
	) (*models.Invoice, error)
}

// SettingsProvider supplies the issuer identity snapshot.
type SettingsProvider interface {
	Get() models.ShopSettings
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo     Repository
	settings SettingsProvider
	now      func() time.Time
}

func NewService(repo Repository, settings SettingsProvider, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:     repo,
		settings: settings,
		now:      now,
	}
}

// CreateForAppointment issues the client invoice for a completed
// appointment. Idempotent: an existing invoice for the appointment is
// returned as-is.
func (s *Service) CreateForAppointment(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Invoice, error) {

	existing, err := s.repo.FindByAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	shop := s.settings.Get()
	apID := ap.ID

	inv := &models.Invoice{
		Kind:          models.InvoiceKindClientService,
		AppointmentID: &apID,

		IssuerName:    shop.ShopName,
		IssuerAddress: shop.Address,
		IssuerPhone:   shop.Phone,
		PartyName:     ap.Client.Name,
		PartyEmail:    ap.Client.Email,
		PartyPhone:    ap.Client.Phone,

		Total: ap.Service.Price,
		Items: []models.InvoiceItem{
			{
				Description: ap.Service.Name,
				Quantity:    1,
				UnitPrice:   ap.Service.Price,
				Total:       ap.Service.Price,
			},
		},
	}

	if err := s.repo.CreateNumbered(ctx, inv, s.now().Year()); err != nil {
		return nil, err
	}

	return inv, nil
}

// CreateForBarberPayment issues a payroll invoice for a barber payment.
func (s *Service) CreateForBarberPayment(
	ctx context.Context,
	payment *models.BarberPayment,
	barber *models.User,
) (*models.Invoice, error) {

	shop := s.settings.Get()

	inv := &models.Invoice{
		Kind: models.InvoiceKindBarberPayment,

		IssuerName:    shop.ShopName,
		IssuerAddress: shop.Address,
		IssuerPhone:   shop.Phone,
		PartyName:     barber.Name,
		PartyEmail:    barber.Email,
		PartyPhone:    barber.Phone,

		Total: payment.Amount,
		Items: []models.InvoiceItem{
			{
				Description: payment.Concept,
				Quantity:    1,
				UnitPrice:   payment.Amount,
				Total:       payment.Amount,
			},
		},
	}

	if err := s.repo.CreateNumbered(ctx, inv, s.now().Year()); err != nil {
		return nil, err
	}

	return inv, nil
}
