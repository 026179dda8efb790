package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/lanavaja/barber-platform/internal/models"
)

func TestRender_BasicEvent(t *testing.T) {
	appointments := []models.Appointment{
		{
			ID:     7,
			Status: "CONFIRMED",
			Date:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Time:   "14:00",
			Barber: models.User{Name: "Diego"},
			Service: models.Service{
				Name:        "Corte",
				DurationMin: 45,
			},
		},
	}

	ics := Render(appointments, time.UTC)

	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"UID:appointment-7@lanavaja.app\r\n",
		"DTSTART:20240610T140000\r\n",
		"DTEND:20240610T144500\r\n",
		"SUMMARY:Corte con Diego\r\n",
		"STATUS:CONFIRMED\r\n",
		"END:VCALENDAR\r\n",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("missing %q in output:\n%s", want, ics)
		}
	}
}

func TestRender_DefaultsToThirtyMinutes(t *testing.T) {
	appointments := []models.Appointment{
		{ID: 1, Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Time: "09:00"},
	}

	ics := Render(appointments, time.UTC)

	if !strings.Contains(ics, "DTEND:20240610T093000\r\n") {
		t.Fatalf("expected 30m default duration:\n%s", ics)
	}
}

func TestRender_EscapesText(t *testing.T) {
	appointments := []models.Appointment{
		{
			ID:      1,
			Date:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Time:    "09:00",
			Notes:   "traer foto; referencia, por favor",
			Service: models.Service{Name: "Corte"},
		},
	}

	ics := Render(appointments, time.UTC)

	if !strings.Contains(ics, `DESCRIPTION:traer foto\; referencia\, por favor`) {
		t.Fatalf("expected escaped description:\n%s", ics)
	}
}

func TestRender_CancelledStatus(t *testing.T) {
	appointments := []models.Appointment{
		{ID: 1, Status: "CANCELLED", Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), Time: "09:00"},
	}

	if !strings.Contains(Render(appointments, time.UTC), "STATUS:CANCELLED\r\n") {
		t.Fatal("expected CANCELLED status")
	}
}
