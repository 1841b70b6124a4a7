// Package inventory hosts the transfer engine that moves stock between
// locations, plus location management.
package inventory

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/inventory"
	"github.com/vinpos/backend/internal/domain/shared"
)

// TransferService owns the stock transfer lifecycle. A transfer moves
// quantity between two locations' stock maps; the aggregate quantity of every
// product is conserved. Update and delete reverse the stored document's moves
// first, mirroring the invoice lifecycle.
type TransferService struct {
	transfers inventory.TransferRepository
	products  catalog.ProductRepository
	settings  shared.SettingsRepository
	logger    *zap.Logger
}

// NewTransferService creates a new TransferService
func NewTransferService(
	transfers inventory.TransferRepository,
	products catalog.ProductRepository,
	settings shared.SettingsRepository,
	logger *zap.Logger,
) *TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferService{
		transfers: transfers,
		products:  products,
		settings:  settings,
		logger:    logger,
	}
}

// TransferItemInput is one product line of a transfer request
type TransferItemInput struct {
	ProductID   uuid.UUID       `json:"productId" binding:"required"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
}

// TransferInput is the payload for creating or replacing a transfer document
type TransferInput struct {
	ID               uuid.UUID           `json:"id"`
	SourceLocationID uuid.UUID           `json:"sourceLocationId" binding:"required"`
	TargetLocationID uuid.UUID           `json:"targetLocationId" binding:"required"`
	Items            []TransferItemInput `json:"items" binding:"required,min=1"`
	Note             string              `json:"note"`
	CreatedBy        string              `json:"createdBy"`
}

// ToDomain converts the input into a transfer document
func (in TransferInput) ToDomain() (*inventory.TransferDocument, error) {
	items := make([]inventory.TransferItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, inventory.TransferItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}
	doc, err := inventory.NewTransferDocument(in.ID, in.SourceLocationID, in.TargetLocationID, items)
	if err != nil {
		return nil, err
	}
	doc.Note = in.Note
	doc.CreatedBy = in.CreatedBy
	return doc, nil
}

// Create validates source stock for every line and executes the moves.
// Validation is all-or-nothing: one short line rejects the whole document.
func (s *TransferService) Create(input TransferInput) (*inventory.TransferDocument, error) {
	doc, err := input.ToDomain()
	if err != nil {
		return nil, err
	}

	if err := s.checkSourceStock(doc); err != nil {
		return nil, err
	}

	if err := s.move(doc, false); err != nil {
		return nil, err
	}
	if err := s.transfers.Save(doc); err != nil {
		return nil, err
	}

	s.logger.Info("transfer created",
		zap.String("transfer_id", doc.ID.String()),
		zap.String("source", doc.SourceLocationID.String()),
		zap.String("target", doc.TargetLocationID.String()),
	)
	return doc, nil
}

// Update reverses the stored document's moves, then validates and applies the
// replacement. If the replacement fails validation the old moves are restored
// so the operation has no net effect.
func (s *TransferService) Update(input TransferInput) (*inventory.TransferDocument, error) {
	old, err := s.transfers.FindByID(input.ID)
	if err != nil {
		return nil, err
	}

	doc, err := input.ToDomain()
	if err != nil {
		return nil, err
	}

	if err := s.move(old, true); err != nil {
		return nil, err
	}
	if err := s.checkSourceStock(doc); err != nil {
		// Put the old moves back; the document is unchanged.
		if restoreErr := s.move(old, false); restoreErr != nil {
			return nil, restoreErr
		}
		return nil, err
	}
	if err := s.move(doc, false); err != nil {
		return nil, err
	}

	doc.CreatedAt = old.CreatedAt
	if err := s.transfers.Save(doc); err != nil {
		return nil, err
	}

	s.logger.Info("transfer updated", zap.String("transfer_id", doc.ID.String()))
	return doc, nil
}

// Delete reverses a transfer's moves and removes the document. A missing id
// is a silent no-op.
func (s *TransferService) Delete(id uuid.UUID) error {
	doc, err := s.transfers.FindByID(id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.move(doc, true); err != nil {
		return err
	}
	if err := s.transfers.Remove(id); err != nil {
		return err
	}

	s.logger.Info("transfer deleted", zap.String("transfer_id", id.String()))
	return nil
}

// GetByID returns one transfer document
func (s *TransferService) GetByID(id uuid.UUID) (*inventory.TransferDocument, error) {
	return s.transfers.FindByID(id)
}

// List returns all transfer documents in creation order
func (s *TransferService) List() []inventory.TransferDocument {
	return s.transfers.FindAll()
}

// checkSourceStock verifies the source location covers every line, unless
// negative stock is globally allowed. Missing products have nothing to move
// and are skipped.
func (s *TransferService) checkSourceStock(doc *inventory.TransferDocument) error {
	if s.settings.Get().AllowNegativeStock {
		return nil
	}
	for _, item := range doc.Items {
		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return err
		}
		if !product.CanFulfillAt(doc.SourceLocationID, item.Quantity) {
			return shared.ErrInsufficientStock
		}
	}
	return nil
}

// move shifts every line's quantity from source to target; with reverse=true
// it shifts them back. Aggregate stock never changes either way.
func (s *TransferService) move(doc *inventory.TransferDocument, reverse bool) error {
	source, target := doc.SourceLocationID, doc.TargetLocationID
	if reverse {
		source, target = target, source
	}
	for _, item := range doc.Items {
		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return err
		}
		product.AdjustStock(source, item.Quantity.Neg())
		product.AdjustStock(target, item.Quantity)
		if err := s.products.Save(product); err != nil {
			return err
		}
	}
	return nil
}
