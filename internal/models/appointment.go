package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Date is the calendar day; Time is the naive shop-local "HH:MM" slot.
	Date time.Time `gorm:"type:date;index" json:"date"`
	Time string    `gorm:"size:5" json:"time"`

	Status        string `gorm:"size:20;default:'PENDING';index" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'UNPAID'" json:"payment_status"`

	Notes              string     `gorm:"size:255" json:"notes"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	CancellationReason string     `gorm:"size:255" json:"cancellation_reason"`
	CompletedAt        *time.Time `json:"completed_at"`

	// Independent idempotency markers for the staged reminder windows.
	// Never reset, not even when the appointment is rescheduled.
	Notified24h  bool `gorm:"default:false" json:"notified_24h"`
	Notified12h  bool `gorm:"default:false" json:"notified_12h"`
	Notified2h   bool `gorm:"default:false" json:"notified_2h"`
	Notified30m  bool `gorm:"default:false" json:"notified_30m"`
	ThankYouSent bool `gorm:"default:false" json:"thank_you_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StartAt combines Date and Time into the shop-local start instant.
func (a *Appointment) StartAt(loc *time.Location) time.Time {
	t, err := time.Parse("15:04", a.Time)
	if err != nil {
		return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, loc)
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}
