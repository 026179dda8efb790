package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/httperr"
)

func strPtr(s string) *string { return &s }

func TestUpdate_RescheduleKeepsSentFlags(t *testing.T) {
	repo := newFakeRepo()
	ap := confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")
	ap.Notified24h = true
	ap.Notified12h = true
	repo.appointments[1] = ap

	cache := newFakeCache()
	uc := NewUpdateAppointment(repo, cache, testDispatcher(), time.UTC)

	got, err := uc.Execute(context.Background(), 1, 99, UpdateAppointmentInput{
		Date: strPtr("2024-06-12"),
		Time: strPtr("10:00"),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !got.Notified24h || !got.Notified12h {
		t.Fatal("reschedule must not reset already-sent reminder flags")
	}
	if got.Date.Day() != 12 || got.Time != "10:00" {
		t.Fatalf("reschedule not applied: %v %s", got.Date, got.Time)
	}

	// Both the old day and the new day are invalidated.
	want := map[string]bool{"2024-06-10": true, "2024-06-12": true}
	if len(cache.invalidated) != 2 || !want[cache.invalidated[0]] || !want[cache.invalidated[1]] {
		t.Fatalf("invalidated = %v", cache.invalidated)
	}
}

func TestUpdate_SameDayInvalidatesOnce(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")

	cache := newFakeCache()
	uc := NewUpdateAppointment(repo, cache, testDispatcher(), time.UTC)

	if _, err := uc.Execute(context.Background(), 1, 99, UpdateAppointmentInput{
		Time: strPtr("16:00"),
	}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(cache.invalidated) != 1 {
		t.Fatalf("expected a single invalidation, got %v", cache.invalidated)
	}
}

func TestUpdate_RejectsTerminalStatusChange(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")

	uc := NewUpdateAppointment(repo, newFakeCache(), testDispatcher(), time.UTC)

	for _, status := range []string{"CANCELLED", "COMPLETED", "ARCHIVED"} {
		_, err := uc.Execute(context.Background(), 1, 99, UpdateAppointmentInput{
			Status: strPtr(status),
		})
		if !httperr.IsBusiness(err, "invalid_status") {
			t.Errorf("status %s: expected invalid_status, got %v", status, err)
		}
	}
}

func TestUpdate_AllowsConfirmation(t *testing.T) {
	repo := newFakeRepo()
	ap := confirmedAppointment(1, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "14:00")
	ap.Status = string(domain.StatusPending)
	repo.appointments[1] = ap

	uc := NewUpdateAppointment(repo, newFakeCache(), testDispatcher(), time.UTC)

	got, err := uc.Execute(context.Background(), 1, 99, UpdateAppointmentInput{
		Status: strPtr(string(domain.StatusConfirmed)),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status = %s, want CONFIRMED", got.Status)
	}
}
