package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/vinpos/backend/internal/application/catalog"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.GET("/barcode/:barcode", h.GetByBarcode)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

// Create adds a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var input catalogapp.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	product, err := h.productService.Create(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update replaces a product's descriptive fields
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	var input catalogapp.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	product, err := h.productService.Update(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	if err := h.productService.Delete(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Get returns one product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	product, err := h.productService.GetByID(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// GetByBarcode returns the product carrying the scanned barcode
func (h *ProductHandler) GetByBarcode(c *gin.Context) {
	product, err := h.productService.GetByBarcode(c.Param("barcode"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List returns all products
func (h *ProductHandler) List(c *gin.Context) {
	products := h.productService.List()
	h.SuccessWithTotal(c, products, len(products))
}
