package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/vinpos/backend/internal/application/billing"
	"github.com/vinpos/backend/internal/domain/billing"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.POST("", h.Create)
		invoices.PUT("/:id", h.Update)
		invoices.DELETE("/:id", h.Delete)
	}
}

// Create posts a new invoice, applying its stock and ledger effects
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input billingapp.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	inv, err := h.invoiceService.Create(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inv)
}

// Update replaces an invoice, re-deriving all effects
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var input billingapp.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	inv, err := h.invoiceService.Update(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// Delete removes an invoice, reversing its effects
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	if err := h.invoiceService.Delete(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Get returns one invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}
	inv, err := h.invoiceService.GetByID(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// List returns invoices, optionally filtered by type
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices := h.invoiceService.List()
	if t := c.Query("type"); t != "" {
		invoices = h.invoiceService.ListByType(billing.InvoiceType(t))
	}
	h.SuccessWithTotal(c, invoices, len(invoices))
}
