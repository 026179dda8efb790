package appointment

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/lanavaja/barber-platform/internal/models"
)

func mondayDate() time.Time {
	// 2024-06-10 is a Monday.
	return time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
}

func TestGetAvailability_ComputesOpenSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.availability[int(time.Monday)] = &models.Availability{
		StartTime: "09:00", EndTime: "12:00", IsAvailable: true,
	}
	repo.booked["2024-06-10"] = []string{"10:00"}

	cache := newFakeCache()
	uc := NewGetAvailability(repo, cache)

	slots, err := uc.Execute(context.Background(), 1, mondayDate())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}

	// The result is cached for the next call.
	if cached, ok := cache.Get(context.Background(), 1, "2024-06-10"); !ok || !reflect.DeepEqual(cached, want) {
		t.Fatalf("expected cached slots %v, got %v (ok=%v)", want, cached, ok)
	}
}

func TestGetAvailability_DayOffSuppressesSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.availability[int(time.Monday)] = &models.Availability{
		StartTime: "09:00", EndTime: "12:00", IsAvailable: true,
	}
	repo.daysOff["2024-06-10"] = true

	uc := NewGetAvailability(repo, newFakeCache())

	slots, err := uc.Execute(context.Background(), 1, mondayDate())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty slots on a day off, got %v", slots)
	}
}

func TestGetAvailability_UnavailableWeekdayIsEmptyNotError(t *testing.T) {
	repo := newFakeRepo()
	repo.availability[int(time.Monday)] = &models.Availability{
		StartTime: "09:00", EndTime: "12:00", IsAvailable: false,
	}

	uc := NewGetAvailability(repo, newFakeCache())

	slots, err := uc.Execute(context.Background(), 1, mondayDate())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("expected empty non-nil slots, got %v", slots)
	}
}

func TestGetAvailability_NoScheduleRowIsEmpty(t *testing.T) {
	repo := newFakeRepo()

	uc := NewGetAvailability(repo, newFakeCache())

	slots, err := uc.Execute(context.Background(), 1, mondayDate())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty slots without a schedule, got %v", slots)
	}
}

func TestGetAvailability_ServesFromCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	cache.Set(context.Background(), 1, "2024-06-10", []string{"09:00"})

	uc := NewGetAvailability(repo, cache)

	slots, err := uc.Execute(context.Background(), 1, mondayDate())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !reflect.DeepEqual(slots, []string{"09:00"}) {
		t.Fatalf("expected cached slots, got %v", slots)
	}
}

func TestGetAvailability_RepositoryFailurePropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.availErr = errors.New("connection refused")
	cache := newFakeCache()

	uc := NewGetAvailability(repo, cache)

	_, err := uc.Execute(context.Background(), 1, mondayDate())
	if err == nil {
		t.Fatal("expected the repository failure to surface, got empty slots")
	}
	if len(cache.entries) != 0 {
		t.Fatalf("expected nothing cached on failure, got %v", cache.entries)
	}
}
