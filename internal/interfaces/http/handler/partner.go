package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/vinpos/backend/internal/application/partner"
)

// PartnerHandler handles customer and supplier API endpoints
type PartnerHandler struct {
	BaseHandler
	partnerService *partnerapp.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *partnerapp.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// RegisterRoutes registers customer and supplier routes
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:id", h.GetSupplier)
		suppliers.POST("", h.CreateSupplier)
		suppliers.PUT("/:id", h.UpdateSupplier)
		suppliers.DELETE("/:id", h.DeleteSupplier)
	}
}

// CreateCustomer adds a customer
func (h *PartnerHandler) CreateCustomer(c *gin.Context) {
	var input partnerapp.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	customer, err := h.partnerService.CreateCustomer(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// UpdateCustomer replaces a customer's profile
func (h *PartnerHandler) UpdateCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	var input partnerapp.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	customer, err := h.partnerService.UpdateCustomer(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// DeleteCustomer removes a customer
func (h *PartnerHandler) DeleteCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	if err := h.partnerService.DeleteCustomer(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetCustomer returns one customer
func (h *PartnerHandler) GetCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	customer, err := h.partnerService.GetCustomer(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// ListCustomers returns all customers
func (h *PartnerHandler) ListCustomers(c *gin.Context) {
	customers := h.partnerService.ListCustomers()
	h.SuccessWithTotal(c, customers, len(customers))
}

// CreateSupplier adds a supplier
func (h *PartnerHandler) CreateSupplier(c *gin.Context) {
	var input partnerapp.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	supplier, err := h.partnerService.CreateSupplier(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, supplier)
}

// UpdateSupplier replaces a supplier's profile
func (h *PartnerHandler) UpdateSupplier(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}
	var input partnerapp.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	supplier, err := h.partnerService.UpdateSupplier(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// DeleteSupplier removes a supplier
func (h *PartnerHandler) DeleteSupplier(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}
	if err := h.partnerService.DeleteSupplier(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetSupplier returns one supplier
func (h *PartnerHandler) GetSupplier(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}
	supplier, err := h.partnerService.GetSupplier(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, supplier)
}

// ListSuppliers returns all suppliers
func (h *PartnerHandler) ListSuppliers(c *gin.Context) {
	suppliers := h.partnerService.ListSuppliers()
	h.SuccessWithTotal(c, suppliers, len(suppliers))
}
