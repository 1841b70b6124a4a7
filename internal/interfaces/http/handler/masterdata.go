package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/vinpos/backend/internal/application/catalog"
)

// MasterDataHandler handles catalog reference data API endpoints
type MasterDataHandler struct {
	BaseHandler
	referenceService *catalogapp.ReferenceService
}

// NewMasterDataHandler creates a new MasterDataHandler
func NewMasterDataHandler(referenceService *catalogapp.ReferenceService) *MasterDataHandler {
	return &MasterDataHandler{referenceService: referenceService}
}

// RegisterRoutes registers category, brand and unit routes
func (h *MasterDataHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
	brands := rg.Group("/brands")
	{
		brands.GET("", h.ListBrands)
		brands.POST("", h.CreateBrand)
		brands.PUT("/:id", h.UpdateBrand)
		brands.DELETE("/:id", h.DeleteBrand)
	}
	units := rg.Group("/units")
	{
		units.GET("", h.ListUnits)
		units.POST("", h.CreateUnit)
		units.PUT("/:id", h.UpdateUnit)
		units.DELETE("/:id", h.DeleteUnit)
	}
}

// CreateCategory adds a category
func (h *MasterDataHandler) CreateCategory(c *gin.Context) {
	var input catalogapp.NamedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	category, err := h.referenceService.CreateCategory(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// UpdateCategory renames a category
func (h *MasterDataHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}
	var input catalogapp.NamedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	category, err := h.referenceService.UpdateCategory(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// DeleteCategory removes a category
func (h *MasterDataHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}
	if err := h.referenceService.DeleteCategory(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListCategories returns all categories
func (h *MasterDataHandler) ListCategories(c *gin.Context) {
	categories := h.referenceService.ListCategories()
	h.SuccessWithTotal(c, categories, len(categories))
}

// CreateBrand adds a brand
func (h *MasterDataHandler) CreateBrand(c *gin.Context) {
	var input catalogapp.NamedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	brand, err := h.referenceService.CreateBrand(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, brand)
}

// UpdateBrand renames a brand
func (h *MasterDataHandler) UpdateBrand(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid brand ID")
		return
	}
	var input catalogapp.NamedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	brand, err := h.referenceService.UpdateBrand(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, brand)
}

// DeleteBrand removes a brand
func (h *MasterDataHandler) DeleteBrand(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid brand ID")
		return
	}
	if err := h.referenceService.DeleteBrand(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListBrands returns all brands
func (h *MasterDataHandler) ListBrands(c *gin.Context) {
	brands := h.referenceService.ListBrands()
	h.SuccessWithTotal(c, brands, len(brands))
}

// CreateUnit adds a measurement unit
func (h *MasterDataHandler) CreateUnit(c *gin.Context) {
	var input catalogapp.UnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	unit, err := h.referenceService.CreateUnit(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, unit)
}

// UpdateUnit replaces a measurement unit
func (h *MasterDataHandler) UpdateUnit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}
	var input catalogapp.UnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	unit, err := h.referenceService.UpdateUnit(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, unit)
}

// DeleteUnit removes a measurement unit
func (h *MasterDataHandler) DeleteUnit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid unit ID")
		return
	}
	if err := h.referenceService.DeleteUnit(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListUnits returns all measurement units
func (h *MasterDataHandler) ListUnits(c *gin.Context) {
	units := h.referenceService.ListUnits()
	h.SuccessWithTotal(c, units, len(units))
}
