package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appointmentdomain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/httpresp"
	"github.com/lanavaja/barber-platform/internal/middleware"
	"github.com/lanavaja/barber-platform/internal/models"
	invoiceuc "github.com/lanavaja/barber-platform/internal/usecase/invoice"
)

type AccountingHandler struct {
	db       *gorm.DB
	invoices *invoiceuc.Service
	loc      *time.Location
	log      *zap.Logger
}

func NewAccountingHandler(db *gorm.DB, invoices *invoiceuc.Service, loc *time.Location, log *zap.Logger) *AccountingHandler {
	return &AccountingHandler{db: db, invoices: invoices, loc: loc, log: log}
}

// ======================================================
// BARBER PAYMENTS
// ======================================================

type CreateBarberPaymentRequest struct {
	BarberID    uint    `json:"barber_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Concept     string  `json:"concept" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required"`
}

func (h *AccountingHandler) CreateBarberPayment(c *gin.Context) {
	var req CreateBarberPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_amount", "El importe debe ser positivo.")
		return
	}

	date, err := parseShopDate(h.loc, req.PaymentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La fecha debe tener formato YYYY-MM-DD.")
		return
	}

	var barber models.User
	if err := h.db.
		Where("id = ? AND role IN ?", req.BarberID, []string{middleware.RoleBarber, middleware.RoleAdmin}).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
		return
	}

	payment := models.BarberPayment{
		BarberID:    barber.ID,
		Amount:      req.Amount,
		Concept:     req.Concept,
		PaymentDate: date,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Error al registrar el pago.")
		return
	}

	// The payment record is the source of truth; a failed invoice is
	// reported alongside it, never rolled back into a failure.
	inv, invErr := h.invoices.CreateForBarberPayment(c.Request.Context(), &payment, &barber)
	if invErr != nil {
		h.log.Error("barber payment invoice failed",
			zap.Uint("payment_id", payment.ID), zap.Error(invErr))
	} else {
		payment.InvoiceID = &inv.ID
		if err := h.db.Model(&payment).Update("invoice_id", inv.ID).Error; err != nil {
			h.log.Warn("failed to link invoice to payment", zap.Error(err))
		}
	}

	resp := gin.H{"payment": payment}
	if inv != nil {
		resp["invoice"] = inv
	}
	if invErr != nil {
		resp["invoice_error"] = "No se pudo generar la factura."
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AccountingHandler) ListBarberPayments(c *gin.Context) {
	q := h.db.Preload("Barber").Order("payment_date DESC")

	if barberID := c.Query("barber_id"); barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}

	var payments []models.BarberPayment
	if err := q.Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Error al listar los pagos.")
		return
	}

	httpresp.List(c, payments)
}

// ======================================================
// MANUAL PAYMENTS
// ======================================================

type CreateManualPaymentRequest struct {
	BarberID    *uint   `json:"barber_id"`
	Amount      float64 `json:"amount" binding:"required"`
	Concept     string  `json:"concept" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required"`
}

func (h *AccountingHandler) CreateManualPayment(c *gin.Context) {
	var req CreateManualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_amount", "El importe debe ser positivo.")
		return
	}

	date, err := parseShopDate(h.loc, req.PaymentDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La fecha debe tener formato YYYY-MM-DD.")
		return
	}

	payment := models.ManualPayment{
		BarberID:    req.BarberID,
		Amount:      req.Amount,
		Concept:     req.Concept,
		PaymentDate: date,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Error al registrar el cobro.")
		return
	}

	httpresp.Created(c, payment)
}

func (h *AccountingHandler) ListManualPayments(c *gin.Context) {
	var payments []models.ManualPayment
	if err := h.db.Order("payment_date DESC").Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Error al listar los cobros.")
		return
	}
	httpresp.List(c, payments)
}

// ======================================================
// EXPENSES
// ======================================================

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Concept     string  `json:"concept" binding:"required"`
	Category    string  `json:"category"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
}

func (h *AccountingHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_amount", "El importe debe ser positivo.")
		return
	}

	date, err := parseShopDate(h.loc, req.ExpenseDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "La fecha debe tener formato YYYY-MM-DD.")
		return
	}

	expense := models.Expense{
		Amount:      req.Amount,
		Concept:     req.Concept,
		Category:    req.Category,
		ExpenseDate: date,
	}

	if err := h.db.Create(&expense).Error; err != nil {
		httperr.Internal(c, "failed_to_create_expense", "Error al registrar el gasto.")
		return
	}

	httpresp.Created(c, expense)
}

func (h *AccountingHandler) ListExpenses(c *gin.Context) {
	var expenses []models.Expense
	if err := h.db.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_expenses", "Error al listar los gastos.")
		return
	}
	httpresp.List(c, expenses)
}

func (h *AccountingHandler) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Expense{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_expense", "Error al borrar el gasto.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "expense_not_found", "Gasto no encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// SUMMARY
// ======================================================

type barberRevenue struct {
	BarberID uint    `json:"barber_id"`
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
}

// Summary aggregates revenue and expenses for a month. Revenue comes
// from completed appointments plus manual payments; outgoings are barber
// payments plus expenses.
func (h *AccountingHandler) Summary(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = nowInShop(h.loc).Format("2006-01")
	}

	start, err := time.ParseInLocation("2006-01", month, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "El mes debe tener formato YYYY-MM.")
		return
	}
	end := start.AddDate(0, 1, 0)

	var serviceRevenue float64
	if err := h.db.Model(&models.Appointment{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.status = ? AND appointments.date >= ? AND appointments.date < ?",
			appointmentdomain.StatusCompleted, start, end).
		Scan(&serviceRevenue).Error; err != nil {
		httperr.Internal(c, "failed_to_summarize", "Error al calcular el resumen.")
		return
	}

	var manualRevenue float64
	if err := h.db.Model(&models.ManualPayment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Scan(&manualRevenue).Error; err != nil {
		httperr.Internal(c, "failed_to_summarize", "Error al calcular el resumen.")
		return
	}

	var barberPayments float64
	if err := h.db.Model(&models.BarberPayment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?", start, end).
		Scan(&barberPayments).Error; err != nil {
		httperr.Internal(c, "failed_to_summarize", "Error al calcular el resumen.")
		return
	}

	var expenses float64
	if err := h.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("expense_date >= ? AND expense_date < ?", start, end).
		Scan(&expenses).Error; err != nil {
		httperr.Internal(c, "failed_to_summarize", "Error al calcular el resumen.")
		return
	}

	var byBarber []barberRevenue
	if err := h.db.Model(&models.Appointment{}).
		Select("appointments.barber_id AS barber_id, users.name AS name, COALESCE(SUM(services.price), 0) AS total").
		Joins("JOIN services ON services.id = appointments.service_id").
		Joins("JOIN users ON users.id = appointments.barber_id").
		Where("appointments.status = ? AND appointments.date >= ? AND appointments.date < ?",
			appointmentdomain.StatusCompleted, start, end).
		Group("appointments.barber_id, users.name").
		Order("total DESC").
		Scan(&byBarber).Error; err != nil {
		httperr.Internal(c, "failed_to_summarize", "Error al calcular el resumen.")
		return
	}

	revenue := serviceRevenue + manualRevenue
	outgoings := barberPayments + expenses

	c.JSON(http.StatusOK, gin.H{
		"month":            month,
		"service_revenue":  serviceRevenue,
		"manual_revenue":   manualRevenue,
		"revenue":          revenue,
		"barber_payments":  barberPayments,
		"expenses":         expenses,
		"outgoings":        outgoings,
		"net":              revenue - outgoings,
		"revenue_by_barber": byBarber,
	})
}
