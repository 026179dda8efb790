package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lanavaja/barber-platform/internal/calendar"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/middleware"
	appointmentuc "github.com/lanavaja/barber-platform/internal/usecase/appointment"
)

type CalendarHandler struct {
	listUC *appointmentuc.ListAppointments
	loc    *time.Location
}

func NewCalendarHandler(listUC *appointmentuc.ListAppointments, loc *time.Location) *CalendarHandler {
	return &CalendarHandler{listUC: listUC, loc: loc}
}

// Export serves the caller's appointments as an iCalendar file. Clients
// get their bookings; barbers get their agenda for the current month.
func (h *CalendarHandler) Export(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	switch role {
	case middleware.RoleBarber, middleware.RoleAdmin:
		now := nowInShop(h.loc)
		list, err := h.listUC.ForBarberInMonth(c.Request.Context(), userID, now.Year(), int(now.Month()))
		if err != nil {
			httperr.Internal(c, "failed_to_export", "Error al exportar el calendario.")
			return
		}
		h.write(c, calendar.Render(list, h.loc))
	default:
		list, err := h.listUC.ForClient(c.Request.Context(), userID)
		if err != nil {
			httperr.Internal(c, "failed_to_export", "Error al exportar el calendario.")
			return
		}
		h.write(c, calendar.Render(list, h.loc))
	}
}

func (h *CalendarHandler) write(c *gin.Context, ics string) {
	c.Header("Content-Disposition", `attachment; filename="citas.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
