package memory

import (
	"maps"
	"strings"

	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/shared"
)

// shallow is the clone function for entities without reference fields.
func shallow[T any](item *T) *T {
	cp := *item
	return &cp
}

func cloneProduct(p *catalog.Product) *catalog.Product {
	cp := *p
	cp.Stocks = maps.Clone(p.Stocks)
	return &cp
}

// ProductRepository is the in-memory catalog.ProductRepository
type ProductRepository struct {
	products *collection[catalog.Product]
}

// NewProductRepository creates an empty product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: newCollection(cloneProduct)}
}

// FindByID finds a product by its ID
func (r *ProductRepository) FindByID(id uuid.UUID) (*catalog.Product, error) {
	return r.products.get(id)
}

// FindByCode finds a product by its code
func (r *ProductRepository) FindByCode(code string) (*catalog.Product, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return r.products.first(func(p *catalog.Product) bool { return p.Code == code })
}

// FindByBarcode finds a product by barcode
func (r *ProductRepository) FindByBarcode(barcode string) (*catalog.Product, error) {
	return r.products.first(func(p *catalog.Product) bool { return p.Barcode == barcode })
}

// FindAll returns all products in insertion order
func (r *ProductRepository) FindAll() []catalog.Product {
	return r.products.all()
}

// Save creates or replaces a product
func (r *ProductRepository) Save(product *catalog.Product) error {
	if product == nil || product.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.products.put(product.ID, product)
	return nil
}

// Remove deletes a product by ID
func (r *ProductRepository) Remove(id uuid.UUID) error {
	return r.products.remove(id)
}

// CategoryRepository is the in-memory catalog.CategoryRepository
type CategoryRepository struct {
	categories *collection[catalog.Category]
}

// NewCategoryRepository creates an empty category repository
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: newCollection(shallow[catalog.Category])}
}

// FindByID finds a category by its ID
func (r *CategoryRepository) FindByID(id uuid.UUID) (*catalog.Category, error) {
	return r.categories.get(id)
}

// FindAll returns all categories
func (r *CategoryRepository) FindAll() []catalog.Category {
	return r.categories.all()
}

// Save creates or replaces a category
func (r *CategoryRepository) Save(category *catalog.Category) error {
	if category == nil || category.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.categories.put(category.ID, category)
	return nil
}

// Remove deletes a category by ID
func (r *CategoryRepository) Remove(id uuid.UUID) error {
	return r.categories.remove(id)
}

// BrandRepository is the in-memory catalog.BrandRepository
type BrandRepository struct {
	brands *collection[catalog.Brand]
}

// NewBrandRepository creates an empty brand repository
func NewBrandRepository() *BrandRepository {
	return &BrandRepository{brands: newCollection(shallow[catalog.Brand])}
}

// FindByID finds a brand by its ID
func (r *BrandRepository) FindByID(id uuid.UUID) (*catalog.Brand, error) {
	return r.brands.get(id)
}

// FindAll returns all brands
func (r *BrandRepository) FindAll() []catalog.Brand {
	return r.brands.all()
}

// Save creates or replaces a brand
func (r *BrandRepository) Save(brand *catalog.Brand) error {
	if brand == nil || brand.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.brands.put(brand.ID, brand)
	return nil
}

// Remove deletes a brand by ID
func (r *BrandRepository) Remove(id uuid.UUID) error {
	return r.brands.remove(id)
}

// UnitRepository is the in-memory catalog.UnitRepository
type UnitRepository struct {
	units *collection[catalog.Unit]
}

// NewUnitRepository creates an empty unit repository
func NewUnitRepository() *UnitRepository {
	return &UnitRepository{units: newCollection(shallow[catalog.Unit])}
}

// FindByID finds a unit by its ID
func (r *UnitRepository) FindByID(id uuid.UUID) (*catalog.Unit, error) {
	return r.units.get(id)
}

// FindAll returns all units
func (r *UnitRepository) FindAll() []catalog.Unit {
	return r.units.all()
}

// Save creates or replaces a unit
func (r *UnitRepository) Save(unit *catalog.Unit) error {
	if unit == nil || unit.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.units.put(unit.ID, unit)
	return nil
}

// Remove deletes a unit by ID
func (r *UnitRepository) Remove(id uuid.UUID) error {
	return r.units.remove(id)
}
