package appointment

import (
	"testing"
	"time"

	"github.com/lanavaja/barber-platform/internal/httperr"
)

func TestCanCancelAt_EnforcesNotice(t *testing.T) {
	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

	// 24h05m ahead: allowed.
	now := time.Date(2024, 6, 9, 13, 55, 0, 0, time.UTC)
	if err := CanCancelAt(start, now, false); err != nil {
		t.Fatalf("expected cancellation allowed, got %v", err)
	}

	// 23h55m ahead: rejected.
	now = time.Date(2024, 6, 9, 14, 5, 0, 0, time.UTC)
	err := CanCancelAt(start, now, false)
	if !httperr.IsBusiness(err, "cancellation_window") {
		t.Fatalf("expected cancellation_window, got %v", err)
	}
}

func TestCanCancelAt_ExactBoundaryAllowed(t *testing.T) {
	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	now := start.Add(-CancellationNotice)

	if err := CanCancelAt(start, now, false); err != nil {
		t.Fatalf("expected cancellation allowed at exactly 24h, got %v", err)
	}
}

func TestCanCancelAt_AdminBypassesNotice(t *testing.T) {
	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	now := start.Add(-10 * time.Minute)

	if err := CanCancelAt(start, now, true); err != nil {
		t.Fatalf("expected admin bypass, got %v", err)
	}
}

func TestCanComplete(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed} {
		if err := CanComplete(s); err != nil {
			t.Errorf("CanComplete(%s) = %v, want nil", s, err)
		}
	}

	for _, s := range []Status{StatusCancelled, StatusNoShow} {
		if err := CanComplete(s); !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("CanComplete(%s) = %v, want invalid_state", s, err)
		}
	}
}

func TestIsActive(t *testing.T) {
	active := map[Status]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: false,
		StatusCancelled: false,
		StatusNoShow:    false,
	}

	for s, want := range active {
		if got := IsActive(s); got != want {
			t.Errorf("IsActive(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	if IsValidStatus(Status("ARCHIVED")) {
		t.Fatal("ARCHIVED should not be a valid status")
	}
	if !IsValidStatus(StatusNoShow) {
		t.Fatal("NO_SHOW should be a valid status")
	}
}
