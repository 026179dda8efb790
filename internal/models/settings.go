package models

import "time"

// ShopSettings holds the shop identity used on invoices. A single row,
// loaded explicitly at startup (see settings.Service) and editable by the
// admin.
type ShopSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopName    string `gorm:"size:100;not null" json:"shop_name"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	OpeningInfo string `gorm:"size:255" json:"opening_info"`

	UpdatedAt time.Time `json:"updated_at"`
}
