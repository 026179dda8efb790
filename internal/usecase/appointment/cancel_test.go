package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/models"
)

func confirmedAppointment(id uint, date time.Time, hm string) *models.Appointment {
	return &models.Appointment{
		ID:       id,
		BarberID: 2,
		Status:   string(domain.StatusConfirmed),
		Date:     date,
		Time:     hm,
	}
}

func TestCancel_WithEnoughNotice(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")

	cache := newFakeCache()
	now := time.Date(2024, 6, 9, 13, 0, 0, 0, time.UTC)

	uc := NewCancelAppointment(repo, cache, testDispatcher(), time.UTC, fixedClock(now))

	ap, err := uc.Execute(context.Background(), 1, 5, false, "no puedo ir")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %s, want CANCELLED", ap.Status)
	}
	if ap.CancelledAt == nil {
		t.Fatal("expected CancelledAt to be stamped")
	}
	if ap.CancellationReason != "no puedo ir" {
		t.Fatalf("reason = %q", ap.CancellationReason)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "2024-06-10" {
		t.Fatalf("expected slot cache invalidation for the day, got %v", cache.invalidated)
	}
}

func TestCancel_RejectedInsideNoticeWindow(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")

	now := time.Date(2024, 6, 9, 14, 5, 0, 0, time.UTC)
	uc := NewCancelAppointment(repo, newFakeCache(), testDispatcher(), time.UTC, fixedClock(now))

	_, err := uc.Execute(context.Background(), 1, 5, false, "")
	if !httperr.IsBusiness(err, "cancellation_window") {
		t.Fatalf("expected cancellation_window, got %v", err)
	}

	if repo.appointments[1].Status != string(domain.StatusConfirmed) {
		t.Fatal("appointment must stay CONFIRMED after a rejected cancellation")
	}
}

func TestCancel_AdminBypassesNotice(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")

	now := time.Date(2024, 6, 10, 13, 45, 0, 0, time.UTC)
	uc := NewCancelAppointment(repo, newFakeCache(), testDispatcher(), time.UTC, fixedClock(now))

	ap, err := uc.Execute(context.Background(), 1, 99, true, "cliente avisó por teléfono")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %s, want CANCELLED", ap.Status)
	}
}

func TestCancel_InactiveAppointmentRejected(t *testing.T) {
	repo := newFakeRepo()
	ap := confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")
	ap.Status = string(domain.StatusCompleted)
	repo.appointments[1] = ap

	now := time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC)
	uc := NewCancelAppointment(repo, newFakeCache(), testDispatcher(), time.UTC, fixedClock(now))

	_, err := uc.Execute(context.Background(), 1, 5, false, "")
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestCancel_NotFound(t *testing.T) {
	uc := NewCancelAppointment(newFakeRepo(), newFakeCache(), testDispatcher(), time.UTC, nil)

	_, err := uc.Execute(context.Background(), 42, 5, false, "")
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}
