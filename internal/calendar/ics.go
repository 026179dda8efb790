package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/lanavaja/barber-platform/internal/models"
)

const dtFormat = "20060102T150405"

// Render produces an iCalendar document for a set of appointments.
// Times are emitted as floating local values, matching how the rest of
// the system treats them.
func Render(appointments []models.Appointment, loc *time.Location) string {
	var sb strings.Builder

	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:-//La Navaja//Barber Platform//ES\r\n")

	for _, ap := range appointments {
		start := ap.StartAt(loc)
		end := start.Add(30 * time.Minute)
		if ap.Service.DurationMin > 0 {
			end = start.Add(time.Duration(ap.Service.DurationMin) * time.Minute)
		}

		sb.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&sb, "UID:appointment-%d@lanavaja.app\r\n", ap.ID)
		fmt.Fprintf(&sb, "DTSTART:%s\r\n", start.Format(dtFormat))
		fmt.Fprintf(&sb, "DTEND:%s\r\n", end.Format(dtFormat))
		fmt.Fprintf(&sb, "SUMMARY:%s\r\n", escape(summary(&ap)))
		if ap.Notes != "" {
			fmt.Fprintf(&sb, "DESCRIPTION:%s\r\n", escape(ap.Notes))
		}
		fmt.Fprintf(&sb, "STATUS:%s\r\n", icsStatus(ap.Status))
		sb.WriteString("END:VEVENT\r\n")
	}

	sb.WriteString("END:VCALENDAR\r\n")
	return sb.String()
}

func summary(ap *models.Appointment) string {
	if ap.Service.Name != "" && ap.Barber.Name != "" {
		return fmt.Sprintf("%s con %s", ap.Service.Name, ap.Barber.Name)
	}
	if ap.Service.Name != "" {
		return ap.Service.Name
	}
	return "Cita"
}

func icsStatus(status string) string {
	switch status {
	case "CANCELLED":
		return "CANCELLED"
	case "CONFIRMED", "COMPLETED":
		return "CONFIRMED"
	}
	return "TENTATIVE"
}

func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
