package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/config"
	"github.com/lanavaja/barber-platform/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Availability{},
		&models.DayOff{},
		&models.Appointment{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.BarberPayment{},
		&models.ManualPayment{},
		&models.Expense{},
		&models.Review{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Message{},
		&models.GalleryImage{},
		&models.ShopSettings{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
