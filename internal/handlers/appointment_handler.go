package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/httpresp"
	"github.com/lanavaja/barber-platform/internal/middleware"
	ucAppointment "github.com/lanavaja/barber-platform/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	cancelUC       *ucAppointment.CancelAppointment
	completeUC     *ucAppointment.CompleteAppointment
	updateUC       *ucAppointment.UpdateAppointment
	listUC         *ucAppointment.ListAppointments
	availabilityUC *ucAppointment.GetAvailability
	loc            *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	listUC *ucAppointment.ListAppointments,
	availabilityUC *ucAppointment.GetAvailability,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		updateUC:       updateUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
		loc:            loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type PatchAppointmentRequest struct {
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	Notes         *string `json:"notes"`
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`

	CancellationReason string `json:"cancellation_reason"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseShopDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_slots", "Error al calcular la disponibilidad.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:  clientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "time_conflict"):
			httperr.Conflict(c, "time_conflict", "Ese horario ya está reservado.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.BadRequest(c, "barber_not_found", "Barbero no encontrado.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Servicio no encontrado.")
		case httperr.IsBusiness(err, "invalid_date"), httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Error al crear la cita.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// PATCH (status transitions + partial update)
// ======================================================

func (h *AppointmentHandler) Patch(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	isAdmin := middleware.IsAdmin(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req PatchAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case "CANCELLED":
			h.cancel(c, uint(id), actorID, isAdmin, req.CancellationReason)
			return
		case "COMPLETED":
			h.complete(c, uint(id), actorID)
			return
		}
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), uint(id), actorID, ucAppointment.UpdateAppointmentInput{
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) cancel(c *gin.Context, id, actorID uint, isAdmin bool, reason string) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), id, actorID, isAdmin, reason)
	if err != nil {
		if httperr.IsBusiness(err, "cancellation_window") {
			httperr.BadRequest(c, "cancellation_window",
				"No se puede cancelar con menos de 24 horas de antelación.")
			return
		}
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) complete(c *gin.Context, id, actorID uint) {
	res, err := h.completeUC.Execute(c.Request.Context(), id, actorID)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	// The invoice is a side effect: its failure is reported alongside the
	// completed appointment, never as a failure of the completion.
	body := gin.H{"appointment": res.Appointment}
	if res.Invoice != nil {
		body["invoice"] = res.Invoice
	}
	if res.InvoiceErr != nil {
		body["invoice_error"] = "No se pudo generar la factura."
	}

	httpresp.OK(c, body)
}

// ======================================================
// DELETE (soft)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	isAdmin := middleware.IsAdmin(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	h.cancel(c, uint(id), actorID, isAdmin, "")
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listUC.ForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar las citas.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	if middleware.IsAdmin(c) {
		if q := c.Query("barber_id"); q != "" {
			id, err := strconv.ParseUint(q, 10, 64)
			if err != nil {
				httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
				return
			}
			barberID = uint(id)
		}
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseShopDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	aps, err := h.listUC.ForBarberOnDate(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar las citas.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Año y mes son obligatorios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	aps, err := h.listUC.ForBarberInMonth(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar las citas.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}

// ======================================================
// ERRORS
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "La cita no admite ese cambio de estado.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Estado inválido.")
	case httperr.IsBusiness(err, "invalid_date"), httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
	default:
		httperr.Internal(c, "appointment_error", "Error al actualizar la cita.")
	}
}
