package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/models"
	"github.com/lanavaja/barber-platform/internal/scheduler"
)

type SchedulerGormStore struct {
	db  *gorm.DB
	loc *time.Location
}

func NewSchedulerGormStore(db *gorm.DB, loc *time.Location) *SchedulerGormStore {
	return &SchedulerGormStore{db: db, loc: loc}
}

func flagColumn(w scheduler.Window) (string, error) {
	switch w.Label {
	case "24h":
		return "notified_24h", nil
	case "12h":
		return "notified_12h", nil
	case "2h":
		return "notified_2h", nil
	case "30m":
		return "notified_30m", nil
	}
	return "", fmt.Errorf("unknown reminder window %q", w.Label)
}

// ListDue narrows candidates by calendar date in SQL, then filters on the
// exact start instant in Go, since the slot time lives in a separate
// "HH:MM" column.
func (s *SchedulerGormStore) ListDue(
	ctx context.Context,
	w scheduler.Window,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	col, err := flagColumn(w)
	if err != nil {
		return nil, err
	}

	var candidates []models.Appointment
	if err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where(
			"date >= ? AND date <= ? AND status IN ? AND "+col+" = false",
			from.Format("2006-01-02"),
			to.Format("2006-01-02"),
			[]string{"PENDING", "CONFIRMED"},
		).
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	due := candidates[:0]
	for _, ap := range candidates {
		start := ap.StartAt(s.loc)
		if !start.Before(from) && !start.After(to) {
			due = append(due, ap)
		}
	}

	return due, nil
}

func (s *SchedulerGormStore) MarkNotified(
	ctx context.Context,
	appointmentID uint,
	w scheduler.Window,
) error {

	col, err := flagColumn(w)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update(col, true).Error
}

func (s *SchedulerGormStore) ListCompletedUnthanked(
	ctx context.Context,
	day time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where(
			"date = ? AND status = ? AND thank_you_sent = false",
			day.Format("2006-01-02"), "COMPLETED",
		).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (s *SchedulerGormStore) MarkThankYouSent(
	ctx context.Context,
	appointmentID uint,
) error {
	return s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("thank_you_sent", true).Error
}

// Compile-time check
var _ scheduler.Store = (*SchedulerGormStore)(nil)
