package scheduler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/models"
	"github.com/lanavaja/barber-platform/internal/notify"
)

type fakeStore struct {
	appointments []models.Appointment
	loc          *time.Location

	marked    map[uint][]string
	thanked   []uint
	unthanked []models.Appointment
}

func newFakeStore(loc *time.Location) *fakeStore {
	return &fakeStore{loc: loc, marked: map[uint][]string{}}
}

func (s *fakeStore) flagged(ap *models.Appointment, w Window) bool {
	for _, label := range s.marked[ap.ID] {
		if label == w.Label {
			return true
		}
	}
	return false
}

func (s *fakeStore) ListDue(_ context.Context, w Window, from, to time.Time) ([]models.Appointment, error) {
	var due []models.Appointment
	for _, ap := range s.appointments {
		if ap.Status != "PENDING" && ap.Status != "CONFIRMED" {
			continue
		}
		if s.flagged(&ap, w) {
			continue
		}
		start := ap.StartAt(s.loc)
		if !start.Before(from) && !start.After(to) {
			due = append(due, ap)
		}
	}
	return due, nil
}

func (s *fakeStore) MarkNotified(_ context.Context, id uint, w Window) error {
	s.marked[id] = append(s.marked[id], w.Label)
	return nil
}

func (s *fakeStore) ListCompletedUnthanked(_ context.Context, _ time.Time) ([]models.Appointment, error) {
	return s.unthanked, nil
}

func (s *fakeStore) MarkThankYouSent(_ context.Context, id uint) error {
	s.thanked = append(s.thanked, id)
	s.unthanked = nil
	return nil
}

type fakeNotifier struct {
	sent []notify.Message
	to   []notify.Recipient
}

func (n *fakeNotifier) Notify(_ context.Context, to notify.Recipient, msg notify.Message) {
	n.to = append(n.to, to)
	n.sent = append(n.sent, msg)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func appointmentAt(id uint, start time.Time) models.Appointment {
	return models.Appointment{
		ID:       id,
		Status:   "CONFIRMED",
		Date:     time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		Time:     start.Format("15:04"),
		Client:   models.User{Name: "Marta", Email: "marta@example.com"},
		Barber:   models.User{Name: "Diego"},
		Service:  models.Service{Name: "Corte"},
	}
}

func TestRun_SendsReminderOncePerWindow(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 9, 13, 50, 0, 0, loc)

	store := newFakeStore(loc)
	store.appointments = []models.Appointment{
		appointmentAt(1, now.Add(24*time.Hour+10*time.Minute)),
	}

	notifier := &fakeNotifier{}
	s := New(store, notifier, zap.NewNop(), loc, fixedClock(now))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Client and barber each get one message.
	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(notifier.sent))
	}
	if got := store.marked[1]; len(got) != 1 || got[0] != "24h" {
		t.Fatalf("expected 24h flag, got %v", got)
	}

	// A second pass must not re-send.
	notifier.sent = nil
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no re-send, got %d messages", len(notifier.sent))
	}
}

func TestRun_WindowsAreIndependent(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, loc)

	store := newFakeStore(loc)
	store.appointments = []models.Appointment{
		// Inside the 2h window only.
		appointmentAt(7, now.Add(2*time.Hour+5*time.Minute)),
	}

	notifier := &fakeNotifier{}
	s := New(store, notifier, zap.NewNop(), loc, fixedClock(now))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := store.marked[7]; len(got) != 1 || got[0] != "2h" {
		t.Fatalf("expected only 2h flag, got %v", got)
	}
}

func TestRun_OutsideToleranceNotPicked(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, loc)

	store := newFakeStore(loc)
	store.appointments = []models.Appointment{
		// 25h30m ahead: past the 24h window's one-hour tolerance.
		appointmentAt(3, now.Add(25*time.Hour+30*time.Minute)),
	}

	notifier := &fakeNotifier{}
	s := New(store, notifier, zap.NewNop(), loc, fixedClock(now))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(notifier.sent) != 0 {
		t.Fatalf("expected no messages, got %d", len(notifier.sent))
	}
	if len(store.marked) != 0 {
		t.Fatalf("expected no flags, got %v", store.marked)
	}
}

func TestRun_ThankYouAfterCompletion(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 6, 10, 20, 0, 0, 0, loc)

	store := newFakeStore(loc)
	completed := appointmentAt(9, now.Add(-2*time.Hour))
	completed.Status = "COMPLETED"
	store.unthanked = []models.Appointment{completed}

	notifier := &fakeNotifier{}
	s := New(store, notifier, zap.NewNop(), loc, fixedClock(now))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(store.thanked) != 1 || store.thanked[0] != 9 {
		t.Fatalf("expected appointment 9 thanked, got %v", store.thanked)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 thank-you message, got %d", len(notifier.sent))
	}
}
