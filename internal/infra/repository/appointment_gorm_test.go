package repository

import (
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lanavaja/barber-platform/internal/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestSlotTakenQuery_LocksRowsNotAnAggregate(t *testing.T) {
	db := dryRunDB(t)

	ap := &models.Appointment{
		BarberID: 2,
		Date:     time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:     "10:00",
	}

	var taken []uint
	sql := slotTakenQuery(db, ap).Pluck("id", &taken).Statement.SQL.String()

	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("conflict check lost its row lock: %s", sql)
	}
	if strings.Contains(strings.ToLower(sql), "count(") {
		t.Fatalf("postgres rejects FOR UPDATE next to an aggregate: %s", sql)
	}
	if !strings.Contains(sql, "barber_id = ") {
		t.Fatalf("conflict check lost its slot filter: %s", sql)
	}
}
