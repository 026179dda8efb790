package models

import "time"

// Invoice kinds.
const (
	InvoiceKindClientService = "CLIENT_SERVICE"
	InvoiceKindBarberPayment = "BARBER_PAYMENT"
)

// Invoice is an immutable record of a billable event. Created once; the
// only permitted mutation is flipping Paid.
type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Number string `gorm:"size:20;uniqueIndex;not null" json:"number"`
	Kind   string `gorm:"size:20;not null" json:"kind"`

	AppointmentID *uint `gorm:"uniqueIndex" json:"appointment_id"`

	// Identity snapshots taken at creation time.
	IssuerName    string `gorm:"size:100" json:"issuer_name"`
	IssuerAddress string `gorm:"size:255" json:"issuer_address"`
	IssuerPhone   string `gorm:"size:20" json:"issuer_phone"`
	PartyName     string `gorm:"size:100" json:"party_name"`
	PartyEmail    string `gorm:"size:100" json:"party_email"`
	PartyPhone    string `gorm:"size:20" json:"party_phone"`

	Total float64 `json:"total"`

	Paid   bool       `gorm:"default:false" json:"paid"`
	PaidAt *time.Time `json:"paid_at"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"index" json:"invoice_id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Quantity    int     `gorm:"default:1" json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}
