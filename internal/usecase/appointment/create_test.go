package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/middleware"
	"github.com/lanavaja/barber-platform/internal/models"
)

func createInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientID:  5,
		BarberID:  2,
		ServiceID: 3,
		Date:      "2024-06-10",
		Time:      "14:00",
	}
}

func repoWithBarberAndService() *fakeRepo {
	repo := newFakeRepo()
	repo.users[2] = &models.User{ID: 2, Role: middleware.RoleBarber}
	repo.services[3] = &models.Service{ID: 3, Name: "Corte", Price: 15, Active: true}
	return repo
}

func TestCreate_Succeeds(t *testing.T) {
	repo := repoWithBarberAndService()
	cache := newFakeCache()

	uc := NewCreateAppointment(repo, cache, testDispatcher(), time.UTC)

	ap, err := uc.Execute(context.Background(), createInput())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("status = %s, want PENDING", ap.Status)
	}
	if ap.Time != "14:00" {
		t.Fatalf("time = %s", ap.Time)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "2024-06-10" {
		t.Fatalf("expected cache invalidation, got %v", cache.invalidated)
	}
}

func TestCreate_TimeConflictPropagates(t *testing.T) {
	repo := repoWithBarberAndService()
	repo.createErr = httperr.ErrBusiness("time_conflict")

	cache := newFakeCache()
	uc := NewCreateAppointment(repo, cache, testDispatcher(), time.UTC)

	_, err := uc.Execute(context.Background(), createInput())
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("expected time_conflict, got %v", err)
	}
	if len(cache.invalidated) != 0 {
		t.Fatal("cache must not be invalidated on a failed booking")
	}
}

func TestCreate_RejectsNonBarber(t *testing.T) {
	repo := repoWithBarberAndService()
	repo.users[2].Role = middleware.RoleClient

	uc := NewCreateAppointment(repo, newFakeCache(), testDispatcher(), time.UTC)

	_, err := uc.Execute(context.Background(), createInput())
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}

func TestCreate_RejectsInactiveService(t *testing.T) {
	repo := repoWithBarberAndService()
	repo.services[3].Active = false

	uc := NewCreateAppointment(repo, newFakeCache(), testDispatcher(), time.UTC)

	_, err := uc.Execute(context.Background(), createInput())
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestCreate_ValidatesDateAndTime(t *testing.T) {
	uc := NewCreateAppointment(repoWithBarberAndService(), newFakeCache(), testDispatcher(), time.UTC)

	in := createInput()
	in.Date = "10/06/2024"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}

	in = createInput()
	in.Time = "2pm"
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "invalid_time") {
		t.Fatalf("expected invalid_time, got %v", err)
	}
}
