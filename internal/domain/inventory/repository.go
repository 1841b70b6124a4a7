package inventory

import (
	"github.com/google/uuid"
)

// LocationRepository defines the interface for location storage
type LocationRepository interface {
	FindByID(id uuid.UUID) (*Location, error)
	FindAll() []Location
	Save(location *Location) error
	Remove(id uuid.UUID) error
}

// TransferRepository defines the interface for transfer document storage
type TransferRepository interface {
	FindByID(id uuid.UUID) (*TransferDocument, error)
	FindAll() []TransferDocument
	Save(transfer *TransferDocument) error
	Remove(id uuid.UUID) error
}
