package models

import "time"

// Availability declares a barber's recurring weekly schedule, one row per
// (barber, weekday). Times are naive shop-local "HH:MM" strings.
type Availability struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_avail_barber_weekday,unique" json:"barber_id"`

	Weekday int `gorm:"index:idx_avail_barber_weekday,unique" json:"weekday"`

	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`
	IsAvailable bool   `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DayOff is an explicit exception date that suppresses availability
// regardless of the weekly schedule.
type DayOff struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	Date   time.Time `gorm:"type:date;index" json:"date"`
	Reason string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
