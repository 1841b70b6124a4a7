package inventory

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/shared"
)

// LocationType distinguishes warehouses from retail stores
type LocationType string

const (
	LocationTypeWarehouse LocationType = "WAREHOUSE"
	LocationTypeStore     LocationType = "STORE"
)

// Location is the unit at which stock quantity is tracked independently.
// Stores may reference warehouses for replenishment context; the link is
// informational and not enforced by the transfer engine.
type Location struct {
	shared.BaseEntity
	Name               string       `json:"name"`
	Type               LocationType `json:"type"`
	LinkedWarehouseIDs []uuid.UUID  `json:"linkedWarehouseIds"`
}

// NewLocation creates a new stock location
func NewLocation(name string, locationType LocationType) (*Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Location name cannot be empty")
	}
	switch locationType {
	case LocationTypeWarehouse, LocationTypeStore:
	default:
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown location type")
	}
	return &Location{BaseEntity: shared.NewBaseEntity(), Name: name, Type: locationType}, nil
}
