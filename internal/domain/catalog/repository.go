package catalog

import (
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product storage
type ProductRepository interface {
	FindByID(id uuid.UUID) (*Product, error)
	FindByCode(code string) (*Product, error)
	FindByBarcode(barcode string) (*Product, error)
	FindAll() []Product
	Save(product *Product) error
	Remove(id uuid.UUID) error
}

// CategoryRepository defines the interface for category storage
type CategoryRepository interface {
	FindByID(id uuid.UUID) (*Category, error)
	FindAll() []Category
	Save(category *Category) error
	Remove(id uuid.UUID) error
}

// BrandRepository defines the interface for brand storage
type BrandRepository interface {
	FindByID(id uuid.UUID) (*Brand, error)
	FindAll() []Brand
	Save(brand *Brand) error
	Remove(id uuid.UUID) error
}

// UnitRepository defines the interface for measurement unit storage
type UnitRepository interface {
	FindByID(id uuid.UUID) (*Unit, error)
	FindAll() []Unit
	Save(unit *Unit) error
	Remove(id uuid.UUID) error
}
