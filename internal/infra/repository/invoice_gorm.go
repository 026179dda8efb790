package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/lanavaja/barber-platform/internal/domain/invoice"
	"github.com/lanavaja/barber-platform/internal/models"
	uc "github.com/lanavaja/barber-platform/internal/usecase/invoice"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

func (r *InvoiceGormRepository) FindByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Invoice, error) {

	var inv models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("appointment_id = ?", appointmentID).
		First(&inv).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &inv, nil
}

// CreateNumbered computes the next number from the highest existing one
// for the year and inserts both inside one transaction. The lock on the
// highest row narrows the duplicate window; a residual collision hits the
// unique index on number.
func (r *InvoiceGormRepository) CreateNumbered(
	ctx context.Context,
	inv *models.Invoice,
	year int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var last []string
		if err := tx.
			Model(&models.Invoice{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("number LIKE ?", domain.YearPrefix(year)+"%").
			// Length first: plain lexicographic order would rank
			// INV-2024-9999 above INV-2024-10000.
			Order("length(number) DESC, number DESC").
			Limit(1).
			Pluck("number", &last).Error; err != nil {
			return err
		}

		lastNumber := ""
		if len(last) > 0 {
			lastNumber = last[0]
		}

		inv.Number = domain.Next(year, lastNumber)
		return tx.Create(inv).Error
	})
}

func (r *InvoiceGormRepository) ListInvoices(
	ctx context.Context,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("number DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}

	return invoices, nil
}

func (r *InvoiceGormRepository) GetInvoice(
	ctx context.Context,
	id uint,
) (*models.Invoice, error) {

	var inv models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&inv, id).Error; err != nil {
		return nil, err
	}

	return &inv, nil
}

func (r *InvoiceGormRepository) MarkPaid(
	ctx context.Context,
	id uint,
	paidAt time.Time,
) (*models.Invoice, error) {

	var inv models.Invoice
	if err := r.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		return nil, err
	}

	inv.Paid = true
	inv.PaidAt = &paidAt

	if err := r.db.WithContext(ctx).Save(&inv).Error; err != nil {
		return nil, err
	}

	return &inv, nil
}

// Compile-time check
var _ uc.Repository = (*InvoiceGormRepository)(nil)
