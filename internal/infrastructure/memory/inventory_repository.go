package memory

import (
	"slices"

	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/inventory"
	"github.com/vinpos/backend/internal/domain/shared"
)

func cloneLocation(l *inventory.Location) *inventory.Location {
	cp := *l
	cp.LinkedWarehouseIDs = slices.Clone(l.LinkedWarehouseIDs)
	return &cp
}

func cloneTransfer(t *inventory.TransferDocument) *inventory.TransferDocument {
	cp := *t
	cp.Items = slices.Clone(t.Items)
	return &cp
}

// LocationRepository is the in-memory inventory.LocationRepository
type LocationRepository struct {
	locations *collection[inventory.Location]
}

// NewLocationRepository creates an empty location repository
func NewLocationRepository() *LocationRepository {
	return &LocationRepository{locations: newCollection(cloneLocation)}
}

// FindByID finds a location by its ID
func (r *LocationRepository) FindByID(id uuid.UUID) (*inventory.Location, error) {
	return r.locations.get(id)
}

// FindAll returns all locations
func (r *LocationRepository) FindAll() []inventory.Location {
	return r.locations.all()
}

// Save creates or replaces a location
func (r *LocationRepository) Save(location *inventory.Location) error {
	if location == nil || location.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.locations.put(location.ID, location)
	return nil
}

// Remove deletes a location by ID
func (r *LocationRepository) Remove(id uuid.UUID) error {
	return r.locations.remove(id)
}

// TransferRepository is the in-memory inventory.TransferRepository
type TransferRepository struct {
	transfers *collection[inventory.TransferDocument]
}

// NewTransferRepository creates an empty transfer repository
func NewTransferRepository() *TransferRepository {
	return &TransferRepository{transfers: newCollection(cloneTransfer)}
}

// FindByID finds a transfer document by its ID
func (r *TransferRepository) FindByID(id uuid.UUID) (*inventory.TransferDocument, error) {
	return r.transfers.get(id)
}

// FindAll returns all transfer documents in insertion order
func (r *TransferRepository) FindAll() []inventory.TransferDocument {
	return r.transfers.all()
}

// Save creates or replaces a transfer document
func (r *TransferRepository) Save(transfer *inventory.TransferDocument) error {
	if transfer == nil || transfer.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.transfers.put(transfer.ID, transfer)
	return nil
}

// Remove deletes a transfer document by ID
func (r *TransferRepository) Remove(id uuid.UUID) error {
	return r.transfers.remove(id)
}
