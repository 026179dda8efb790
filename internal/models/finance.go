package models

import "time"

// BarberPayment is a payroll payment to a barber; creating one issues a
// BARBER_PAYMENT invoice.
type BarberPayment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	Amount      float64   `json:"amount"`
	Concept     string    `gorm:"size:255" json:"concept"`
	PaymentDate time.Time `gorm:"type:date" json:"payment_date"`

	InvoiceID *uint `json:"invoice_id"`

	CreatedAt time.Time `json:"created_at"`
}

// ManualPayment is revenue registered outside the appointment flow
// (walk-ins, product sales).
type ManualPayment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID *uint `gorm:"index" json:"barber_id"`

	Amount      float64   `json:"amount"`
	Concept     string    `gorm:"size:255" json:"concept"`
	PaymentDate time.Time `gorm:"type:date" json:"payment_date"`

	CreatedAt time.Time `json:"created_at"`
}

type Expense struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Amount      float64   `json:"amount"`
	Concept     string    `gorm:"size:255;not null" json:"concept"`
	Category    string    `gorm:"size:50" json:"category"`
	ExpenseDate time.Time `gorm:"type:date" json:"expense_date"`

	CreatedAt time.Time `json:"created_at"`
}
