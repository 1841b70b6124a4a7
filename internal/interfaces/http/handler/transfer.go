package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/vinpos/backend/internal/application/inventory"
)

// TransferHandler handles transfer and stock location API endpoints
type TransferHandler struct {
	BaseHandler
	transferService *inventoryapp.TransferService
	locationService *inventoryapp.LocationService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(
	transferService *inventoryapp.TransferService,
	locationService *inventoryapp.LocationService,
) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		locationService: locationService,
	}
}

// RegisterRoutes registers transfer and location routes
func (h *TransferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transfers := rg.Group("/transfers")
	{
		transfers.GET("", h.ListTransfers)
		transfers.GET("/:id", h.GetTransfer)
		transfers.POST("", h.CreateTransfer)
		transfers.PUT("/:id", h.UpdateTransfer)
		transfers.DELETE("/:id", h.DeleteTransfer)
	}
	locations := rg.Group("/locations")
	{
		locations.GET("", h.ListLocations)
		locations.POST("", h.CreateLocation)
		locations.PUT("/:id", h.UpdateLocation)
		locations.DELETE("/:id", h.DeleteLocation)
	}
}

// CreateTransfer posts a stock movement between two locations
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var input inventoryapp.TransferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	doc, err := h.transferService.Create(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, doc)
}

// UpdateTransfer replaces a transfer document, re-deriving the stock movement
func (h *TransferHandler) UpdateTransfer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transfer ID")
		return
	}
	var input inventoryapp.TransferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	doc, err := h.transferService.Update(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// DeleteTransfer removes a transfer, moving the stock back
func (h *TransferHandler) DeleteTransfer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transfer ID")
		return
	}
	if err := h.transferService.Delete(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetTransfer returns one transfer document
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transfer ID")
		return
	}
	doc, err := h.transferService.GetByID(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, doc)
}

// ListTransfers returns all transfer documents
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	docs := h.transferService.List()
	h.SuccessWithTotal(c, docs, len(docs))
}

// CreateLocation adds a warehouse or store
func (h *TransferHandler) CreateLocation(c *gin.Context) {
	var input inventoryapp.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	loc, err := h.locationService.Create(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, loc)
}

// UpdateLocation replaces a location's content
func (h *TransferHandler) UpdateLocation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid location ID")
		return
	}
	var input inventoryapp.LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	loc, err := h.locationService.Update(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, loc)
}

// DeleteLocation removes a location
func (h *TransferHandler) DeleteLocation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid location ID")
		return
	}
	if err := h.locationService.Delete(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListLocations returns all locations
func (h *TransferHandler) ListLocations(c *gin.Context) {
	locations := h.locationService.List()
	h.SuccessWithTotal(c, locations, len(locations))
}
