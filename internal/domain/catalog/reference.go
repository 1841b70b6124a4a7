package catalog

import (
	"strings"

	"github.com/vinpos/backend/internal/domain/shared"
)

// Category groups products for navigation and reporting
type Category struct {
	shared.BaseEntity
	Name string `json:"name"`
}

// NewCategory creates a new category
func NewCategory(name string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &Category{BaseEntity: shared.NewBaseEntity(), Name: name}, nil
}

// Brand identifies a product manufacturer
type Brand struct {
	shared.BaseEntity
	Name string `json:"name"`
}

// NewBrand creates a new brand
func NewBrand(name string) (*Brand, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Brand name cannot be empty")
	}
	return &Brand{BaseEntity: shared.NewBaseEntity(), Name: name}, nil
}

// Unit is a measurement unit for product quantities
type Unit struct {
	shared.BaseEntity
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// NewUnit creates a new measurement unit
func NewUnit(name, shortName string) (*Unit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Unit name cannot be empty")
	}
	return &Unit{BaseEntity: shared.NewBaseEntity(), Name: name, ShortName: shortName}, nil
}
