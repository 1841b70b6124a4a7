// Package catalog manages products and their reference data. Stock quantities
// are exposed read-only here; they change only through invoice effects,
// transfers and the initial stock given at product creation.
package catalog

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/shared"
)

// ProductService handles product management
type ProductService struct {
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{products: products, logger: logger}
}

// ProductInput is the payload for creating or replacing a product
type ProductInput struct {
	ID            uuid.UUID                     `json:"id"`
	Code          string                        `json:"code" binding:"required"`
	Barcode       string                        `json:"barcode"`
	Name          string                        `json:"name" binding:"required"`
	CategoryID    uuid.UUID                     `json:"categoryId"`
	BrandID       uuid.UUID                     `json:"brandId"`
	UnitID        uuid.UUID                     `json:"unitId"`
	SalesPrice    decimal.Decimal               `json:"salesPrice"`
	PurchasePrice decimal.Decimal               `json:"purchasePrice"`
	VATRate       decimal.Decimal               `json:"vatRate"`
	VATIncluded   bool                          `json:"vatIncluded"`
	ImageURL      string                        `json:"imageUrl"`
	InitialStocks map[uuid.UUID]decimal.Decimal `json:"initialStocks"`
}

// Create adds a new product. The product code must be unique; InitialStocks
// seeds the per-location quantities and is only honored at creation time.
func (s *ProductService) Create(input ProductInput) (*catalog.Product, error) {
	if existing, err := s.products.FindByCode(input.Code); err == nil && existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A product with this code already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	product, err := catalog.NewProduct(input.Code, input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.fill(product, input); err != nil {
		return nil, err
	}
	for locationID, qty := range input.InitialStocks {
		product.AdjustStock(locationID, qty)
	}

	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("code", product.Code),
	)
	return product, nil
}

// Update replaces a product's descriptive fields by id. Per-location stock is
// carried over untouched.
func (s *ProductService) Update(input ProductInput) (*catalog.Product, error) {
	product, err := s.products.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	product.Name = input.Name
	if err := s.fill(product, input); err != nil {
		return nil, err
	}
	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) fill(product *catalog.Product, input ProductInput) error {
	product.Barcode = input.Barcode
	product.CategoryID = input.CategoryID
	product.BrandID = input.BrandID
	product.UnitID = input.UnitID
	product.ImageURL = input.ImageURL
	if err := product.SetPrices(input.SalesPrice, input.PurchasePrice); err != nil {
		return err
	}
	return product.SetVAT(input.VATRate, input.VATIncluded)
}

// Delete removes a product by id
func (s *ProductService) Delete(id uuid.UUID) error {
	return s.products.Remove(id)
}

// GetByID returns one product
func (s *ProductService) GetByID(id uuid.UUID) (*catalog.Product, error) {
	return s.products.FindByID(id)
}

// GetByBarcode returns the product carrying the given barcode
func (s *ProductService) GetByBarcode(barcode string) (*catalog.Product, error) {
	return s.products.FindByBarcode(barcode)
}

// List returns all products
func (s *ProductService) List() []catalog.Product {
	return s.products.FindAll()
}
