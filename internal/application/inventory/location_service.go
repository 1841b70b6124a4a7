package inventory

import (
	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/inventory"
)

// LocationService handles stock location management
type LocationService struct {
	locations inventory.LocationRepository
}

// NewLocationService creates a new LocationService
func NewLocationService(locations inventory.LocationRepository) *LocationService {
	return &LocationService{locations: locations}
}

// LocationInput is the payload for creating or replacing a location
type LocationInput struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name" binding:"required"`
	Type               string      `json:"type" binding:"required,oneof=WAREHOUSE STORE"`
	LinkedWarehouseIDs []uuid.UUID `json:"linkedWarehouseIds"`
}

// Create adds a new location
func (s *LocationService) Create(input LocationInput) (*inventory.Location, error) {
	loc, err := inventory.NewLocation(input.Name, inventory.LocationType(input.Type))
	if err != nil {
		return nil, err
	}
	loc.LinkedWarehouseIDs = input.LinkedWarehouseIDs
	if err := s.locations.Save(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Update replaces a location's content by id
func (s *LocationService) Update(input LocationInput) (*inventory.Location, error) {
	loc, err := s.locations.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	loc.Name = input.Name
	loc.Type = inventory.LocationType(input.Type)
	loc.LinkedWarehouseIDs = input.LinkedWarehouseIDs
	loc.Touch()
	if err := s.locations.Save(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Delete removes a location by id
func (s *LocationService) Delete(id uuid.UUID) error {
	return s.locations.Remove(id)
}

// GetByID returns one location
func (s *LocationService) GetByID(id uuid.UUID) (*inventory.Location, error) {
	return s.locations.FindByID(id)
}

// List returns all locations
func (s *LocationService) List() []inventory.Location {
	return s.locations.FindAll()
}
