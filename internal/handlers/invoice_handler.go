package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lanavaja/barber-platform/internal/httperr"
	"github.com/lanavaja/barber-platform/internal/httpresp"
	"github.com/lanavaja/barber-platform/internal/infra/repository"
	"github.com/lanavaja/barber-platform/internal/payments"
)

type InvoiceHandler struct {
	repo  *repository.InvoiceGormRepository
	links *payments.LinkProvider
	log   *zap.Logger
}

// NewInvoiceHandler accepts a nil links provider; payment links then
// respond 503 instead of failing at startup when the gateway is not
// configured.
func NewInvoiceHandler(repo *repository.InvoiceGormRepository, links *payments.LinkProvider, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{repo: repo, links: links, log: log}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.repo.ListInvoices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "Error al listar las facturas.")
		return
	}
	httpresp.List(c, invoices)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.repo.GetInvoice(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "invoice_not_found", "Factura no encontrada.")
		return
	}

	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.repo.MarkPaid(c.Request.Context(), id, time.Now())
	if err != nil {
		httperr.NotFound(c, "invoice_not_found", "Factura no encontrada.")
		return
	}

	httpresp.OK(c, inv)
}

// PaymentLink creates a hosted checkout link for an unpaid invoice.
func (h *InvoiceHandler) PaymentLink(c *gin.Context) {
	if h.links == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    "payments_unavailable",
			"message": "Los pagos en línea no están disponibles.",
		})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.repo.GetInvoice(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "invoice_not_found", "Factura no encontrada.")
		return
	}

	if inv.Paid {
		httperr.Conflict(c, "invoice_already_paid", "La factura ya está pagada.")
		return
	}

	url, err := h.links.PaymentLink(c.Request.Context(), inv)
	if err != nil {
		h.log.Error("payment link failed", zap.String("invoice", inv.Number), zap.Error(err))
		httperr.Internal(c, "failed_to_create_payment_link", "Error al generar el enlace de pago.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_url": url})
}
