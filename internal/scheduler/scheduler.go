package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/models"
	"github.com/lanavaja/barber-platform/internal/notify"
)

// Window is one reminder horizon before an appointment's start. Tolerance
// bounds how far past the exact horizon a run may still pick the
// appointment up, so runs a few minutes apart do not miss it.
type Window struct {
	Label     string
	Lead      time.Duration
	Tolerance time.Duration
}

// Windows are evaluated independently; each has its own sent flag on the
// appointment row.
var Windows = []Window{
	{Label: "24h", Lead: 24 * time.Hour, Tolerance: time.Hour},
	{Label: "12h", Lead: 12 * time.Hour, Tolerance: time.Hour},
	{Label: "2h", Lead: 2 * time.Hour, Tolerance: 30 * time.Minute},
	{Label: "30m", Lead: 30 * time.Minute, Tolerance: 15 * time.Minute},
}

// Store is the persistence surface the batch needs. Rows returned by the
// list methods carry Client, Barber and Service preloaded.
type Store interface {
	ListDue(
		ctx context.Context,
		w Window,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	MarkNotified(
		ctx context.Context,
		appointmentID uint,
		w Window,
	) error

	ListCompletedUnthanked(
		ctx context.Context,
		day time.Time,
	) ([]models.Appointment, error)

	MarkThankYouSent(
		ctx context.Context,
		appointmentID uint,
	) error
}

type Notifier interface {
	Notify(ctx context.Context, to notify.Recipient, msg notify.Message)
}

// Scheduler is a stateless batch: correctness across invocations rests
// entirely on the per-appointment flags, there is no cursor and no lock.
type Scheduler struct {
	store    Store
	notifier Notifier
	log      *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

func New(
	store Store,
	notifier Notifier,
	log *zap.Logger,
	loc *time.Location,
	now func() time.Time,
) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		store:    store,
		notifier: notifier,
		log:      log,
		loc:      loc,
		now:      now,
	}
}

// Run executes one pass over all reminder windows plus the same-day
// thank-you scan.
func (s *Scheduler) Run(ctx context.Context) error {
	now := s.now().In(s.loc)

	for _, w := range Windows {
		if err := s.runWindow(ctx, w, now); err != nil {
			return err
		}
	}

	return s.runThankYou(ctx, now)
}

func (s *Scheduler) runWindow(ctx context.Context, w Window, now time.Time) error {
	from := now.Add(w.Lead)
	to := from.Add(w.Tolerance)

	due, err := s.store.ListDue(ctx, w, from, to)
	if err != nil {
		return fmt.Errorf("list due %s: %w", w.Label, err)
	}

	for _, ap := range due {
		s.sendReminder(ctx, &ap, w)

		// The flag is set even when delivery partially failed: at most
		// one attempt per window, never retry.
		if err := s.store.MarkNotified(ctx, ap.ID, w); err != nil {
			s.log.Error("failed to mark reminder sent",
				zap.Uint("appointment_id", ap.ID),
				zap.String("window", w.Label),
				zap.Error(err),
			)
		}
	}

	return nil
}

func (s *Scheduler) sendReminder(ctx context.Context, ap *models.Appointment, w Window) {
	date := ap.Date.Format("02/01/2006")

	s.notifier.Notify(ctx, recipient(&ap.Client), notify.Message{
		Title: "Recordatorio de cita",
		Body: fmt.Sprintf(
			"Hola %s, tienes una cita de %s el %s a las %s con %s.",
			ap.Client.Name, ap.Service.Name, date, ap.Time, ap.Barber.Name,
		),
	})

	s.notifier.Notify(ctx, recipient(&ap.Barber), notify.Message{
		Title: "Próxima cita",
		Body: fmt.Sprintf(
			"%s tiene cita de %s el %s a las %s.",
			ap.Client.Name, ap.Service.Name, date, ap.Time,
		),
	})

	s.log.Info("reminder dispatched",
		zap.Uint("appointment_id", ap.ID),
		zap.String("window", w.Label),
	)
}

func (s *Scheduler) runThankYou(ctx context.Context, now time.Time) error {
	completed, err := s.store.ListCompletedUnthanked(ctx, now)
	if err != nil {
		return fmt.Errorf("list completed: %w", err)
	}

	for _, ap := range completed {
		s.notifier.Notify(ctx, recipient(&ap.Client), notify.Message{
			Title: "¡Gracias por tu visita!",
			Body: fmt.Sprintf(
				"Hola %s, gracias por visitarnos hoy. ¡Te esperamos pronto!",
				ap.Client.Name,
			),
		})

		if err := s.store.MarkThankYouSent(ctx, ap.ID); err != nil {
			s.log.Error("failed to mark thank-you sent",
				zap.Uint("appointment_id", ap.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}

func recipient(u *models.User) notify.Recipient {
	return notify.Recipient{
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		DeviceToken: u.FCMToken,
	}
}
