package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/cache"
	"github.com/lanavaja/barber-platform/internal/config"
	dbpkg "github.com/lanavaja/barber-platform/internal/db"
	"github.com/lanavaja/barber-platform/internal/logger"
	"github.com/lanavaja/barber-platform/internal/routes"
	"github.com/lanavaja/barber-platform/internal/settings"
	"github.com/lanavaja/barber-platform/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logger.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewClient(cfg)
	loc := timezone.Location(cfg.Timezone)

	shopSettings, err := settings.Load(db)
	if err != nil {
		log.Fatal("failed to load shop settings", zap.Error(err))
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Deps{
		DB:       db,
		Redis:    rdb,
		Settings: shopSettings,
		Log:      log,
		Loc:      loc,
	})

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
