package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/config"
	dbpkg "github.com/lanavaja/barber-platform/internal/db"
	infraRepo "github.com/lanavaja/barber-platform/internal/infra/repository"
	"github.com/lanavaja/barber-platform/internal/logger"
	"github.com/lanavaja/barber-platform/internal/notify"
	"github.com/lanavaja/barber-platform/internal/scheduler"
	"github.com/lanavaja/barber-platform/internal/timezone"
)

// The notifier runs as its own process so reminder delivery keeps going
// through API restarts.
func main() {

	cfg := config.Load()
	log := logger.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	loc := timezone.Location(cfg.Timezone)

	store := infraRepo.NewSchedulerGormStore(db, loc)
	dispatcher := notify.FromConfig(cfg, log)

	batch := scheduler.New(store, dispatcher, log, loc, nil)

	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc("@every 5m", func() {
		if err := batch.Run(context.Background()); err != nil {
			log.Error("scheduler run failed", zap.Error(err))
		}
	})
	if err != nil {
		log.Fatal("failed to schedule notifier", zap.Error(err))
	}

	c.Start()
	log.Info("notifier running")

	// One pass immediately so a restart does not wait out the first tick.
	if err := batch.Run(context.Background()); err != nil {
		log.Error("scheduler run failed", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx := c.Stop()
	<-ctx.Done()
	log.Info("notifier stopped")
}
