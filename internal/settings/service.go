package settings

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/lanavaja/barber-platform/internal/models"
)

// Service holds the shop identity used on invoices. It is initialized
// explicitly at startup rather than fetched lazily wherever needed; the
// admin settings handler updates it through Save.
type Service struct {
	db *gorm.DB

	mu      sync.RWMutex
	current models.ShopSettings
}

func Load(db *gorm.DB) (*Service, error) {
	s := &Service{db: db}

	var row models.ShopSettings
	err := db.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.ShopSettings{ShopName: "La Navaja"}
		if err := db.Create(&row).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	s.current = row
	return s, nil
}

func (s *Service) Get() models.ShopSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Service) Save(ctx context.Context, in models.ShopSettings) (models.ShopSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.current.ID
	if err := s.db.WithContext(ctx).Save(&in).Error; err != nil {
		return models.ShopSettings{}, err
	}

	s.current = in
	return in, nil
}
