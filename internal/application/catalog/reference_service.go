package catalog

import (
	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/catalog"
)

// ReferenceService manages the catalog master data: categories, brands and units
type ReferenceService struct {
	categories catalog.CategoryRepository
	brands     catalog.BrandRepository
	units      catalog.UnitRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(
	categories catalog.CategoryRepository,
	brands catalog.BrandRepository,
	units catalog.UnitRepository,
) *ReferenceService {
	return &ReferenceService{categories: categories, brands: brands, units: units}
}

// NamedInput is the payload for simple name-only reference records
type NamedInput struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" binding:"required"`
}

// CreateCategory adds a new category
func (s *ReferenceService) CreateCategory(input NamedInput) (*catalog.Category, error) {
	category, err := catalog.NewCategory(input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category by id
func (s *ReferenceService) UpdateCategory(input NamedInput) (*catalog.Category, error) {
	category, err := s.categories.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	category.Name = input.Name
	category.Touch()
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category by id
func (s *ReferenceService) DeleteCategory(id uuid.UUID) error {
	return s.categories.Remove(id)
}

// ListCategories returns all categories
func (s *ReferenceService) ListCategories() []catalog.Category {
	return s.categories.FindAll()
}

// CreateBrand adds a new brand
func (s *ReferenceService) CreateBrand(input NamedInput) (*catalog.Brand, error) {
	brand, err := catalog.NewBrand(input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.brands.Save(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// UpdateBrand renames a brand by id
func (s *ReferenceService) UpdateBrand(input NamedInput) (*catalog.Brand, error) {
	brand, err := s.brands.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	brand.Name = input.Name
	brand.Touch()
	if err := s.brands.Save(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// DeleteBrand removes a brand by id
func (s *ReferenceService) DeleteBrand(id uuid.UUID) error {
	return s.brands.Remove(id)
}

// ListBrands returns all brands
func (s *ReferenceService) ListBrands() []catalog.Brand {
	return s.brands.FindAll()
}

// UnitInput is the payload for creating or replacing a measurement unit
type UnitInput struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" binding:"required"`
	ShortName string    `json:"shortName"`
}

// CreateUnit adds a new measurement unit
func (s *ReferenceService) CreateUnit(input UnitInput) (*catalog.Unit, error) {
	unit, err := catalog.NewUnit(input.Name, input.ShortName)
	if err != nil {
		return nil, err
	}
	if err := s.units.Save(unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// UpdateUnit replaces a measurement unit's content by id
func (s *ReferenceService) UpdateUnit(input UnitInput) (*catalog.Unit, error) {
	unit, err := s.units.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	unit.Name = input.Name
	unit.ShortName = input.ShortName
	unit.Touch()
	if err := s.units.Save(unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// DeleteUnit removes a measurement unit by id
func (s *ReferenceService) DeleteUnit(id uuid.UUID) error {
	return s.units.Remove(id)
}

// ListUnits returns all measurement units
func (s *ReferenceService) ListUnits() []catalog.Unit {
	return s.units.FindAll()
}
