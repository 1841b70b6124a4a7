package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/shared"
)

// TransferItem is one product line of a transfer document
type TransferItem struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"` // Snapshot at transfer time
	Quantity    decimal.Decimal `json:"quantity"`
}

// TransferDocument moves quantities between two locations. A transfer never
// changes the aggregate quantity a product has in the business, only where
// it sits.
type TransferDocument struct {
	shared.BaseEntity
	Date             time.Time      `json:"date"`
	SourceLocationID uuid.UUID      `json:"sourceLocationId"`
	TargetLocationID uuid.UUID      `json:"targetLocationId"`
	Items            []TransferItem `json:"items"`
	Note             string         `json:"note"`
	CreatedBy        string         `json:"createdBy"`
}

// NewTransferDocument creates a transfer document
func NewTransferDocument(id, sourceID, targetID uuid.UUID, items []TransferItem) (*TransferDocument, error) {
	if sourceID == uuid.Nil || targetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Source and target locations are required")
	}
	if sourceID == targetID {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Source and target locations must differ")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Transfer must contain at least one item")
	}
	for _, item := range items {
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Transfer quantities must be positive")
		}
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &TransferDocument{
		BaseEntity:       shared.NewBaseEntityWithID(id),
		Date:             time.Now(),
		SourceLocationID: sourceID,
		TargetLocationID: targetID,
		Items:            items,
	}, nil
}
