// Package billing hosts the invoice lifecycle: the effect engine that turns
// an invoice into stock deltas, ledger entries and partner balance changes,
// and the add/update/delete orchestration built on exact reversal.
package billing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vinpos/backend/internal/domain/billing"
	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/finance"
	"github.com/vinpos/backend/internal/domain/partner"
	"github.com/vinpos/backend/internal/domain/shared"
)

// InvoiceService owns the invoice lifecycle. Every financial and stock effect
// an invoice has on the rest of the system flows through applyEffects, which
// is its own exact inverse under the reverse flag; update and delete rely on
// that to never double-count.
type InvoiceService struct {
	invoices     billing.InvoiceRepository
	products     catalog.ProductRepository
	customers    partner.CustomerRepository
	suppliers    partner.SupplierRepository
	transactions finance.TransactionRepository
	settings     shared.SettingsRepository
	logger       *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoices billing.InvoiceRepository,
	products catalog.ProductRepository,
	customers partner.CustomerRepository,
	suppliers partner.SupplierRepository,
	transactions finance.TransactionRepository,
	settings shared.SettingsRepository,
	logger *zap.Logger,
) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		invoices:     invoices,
		products:     products,
		customers:    customers,
		suppliers:    suppliers,
		transactions: transactions,
		settings:     settings,
		logger:       logger,
	}
}

// Create validates stock sufficiency, applies the invoice's effects forward
// and stores it. On ErrInsufficientStock nothing has been touched.
func (s *InvoiceService) Create(input InvoiceInput) (*billing.Invoice, error) {
	inv, err := input.ToDomain()
	if err != nil {
		return nil, err
	}

	if err := s.checkStock(inv); err != nil {
		return nil, err
	}

	if err := s.applyEffects(inv, false); err != nil {
		return nil, err
	}
	if err := s.invoices.Save(inv); err != nil {
		return nil, err
	}

	s.logger.Info("invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("type", string(inv.Type)),
		zap.String("total", inv.Total.String()),
	)
	return inv, nil
}

// Update replaces a stored invoice's content. The stored invoice's effects
// are reversed before the new content is applied, so a reduced-quantity edit
// nets against the prior application instead of double-counting. Edits are
// trusted: no stock sufficiency re-check happens here.
func (s *InvoiceService) Update(input InvoiceInput) (*billing.Invoice, error) {
	old, err := s.invoices.FindByID(input.ID)
	if err != nil {
		return nil, err
	}

	inv, err := input.ToDomain()
	if err != nil {
		return nil, err
	}

	if err := s.applyEffects(old, true); err != nil {
		return nil, err
	}
	if err := s.applyEffects(inv, false); err != nil {
		return nil, err
	}

	inv.CreatedAt = old.CreatedAt
	if err := s.invoices.Save(inv); err != nil {
		return nil, err
	}

	s.logger.Info("invoice updated", zap.String("invoice_id", inv.ID.String()))
	return inv, nil
}

// Delete reverses and removes an invoice. A missing id is a silent no-op.
func (s *InvoiceService) Delete(id uuid.UUID) error {
	inv, err := s.invoices.FindByID(id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.applyEffects(inv, true); err != nil {
		return err
	}
	if err := s.invoices.Remove(id); err != nil {
		return err
	}

	s.logger.Info("invoice deleted", zap.String("invoice_id", id.String()))
	return nil
}

// GetByID returns one invoice
func (s *InvoiceService) GetByID(id uuid.UUID) (*billing.Invoice, error) {
	return s.invoices.FindByID(id)
}

// List returns all invoices in creation order
func (s *InvoiceService) List() []billing.Invoice {
	return s.invoices.FindAll()
}

// ListByType returns invoices of one commercial direction
func (s *InvoiceService) ListByType(invoiceType billing.InvoiceType) []billing.Invoice {
	return s.invoices.FindByType(invoiceType)
}

// checkStock rejects a stock-depleting invoice whose items exceed aggregate
// stock, unless negative stock is globally allowed. Missing products are not
// an error at this stage; they simply have no stock to check.
func (s *InvoiceService) checkStock(inv *billing.Invoice) error {
	if !inv.Type.DepletesStock() || s.settings.Get().AllowNegativeStock {
		return nil
	}
	for _, item := range inv.Items {
		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return err
		}
		if !product.CanFulfill(item.EffectiveQuantity()) {
			return shared.ErrInsufficientStock
		}
	}
	return nil
}

// applyEffects mutates product stock, the transaction ledger and partner
// balances for one invoice. Forward (reverse=false) must run exactly once
// when the invoice is committed; reverse=true exactly once before its content
// is replaced or removed. The engine keeps no applied-state of its own, so
// that pairing is the caller's contract.
func (s *InvoiceService) applyEffects(inv *billing.Invoice, reverse bool) error {
	sign := decimal.NewFromInt(1)
	if reverse {
		sign = decimal.NewFromInt(-1)
	}

	locationID := inv.LocationID
	if locationID == uuid.Nil {
		locationID = s.settings.Get().DefaultLocationID
	}

	direction := inv.Type.StockDirection()
	for _, item := range inv.Items {
		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return err
		}
		product.AdjustStock(locationID, direction.Mul(item.EffectiveQuantity()).Mul(sign))
		if err := s.products.Save(product); err != nil {
			return err
		}
	}

	if reverse {
		removed := s.transactions.RemoveByRelatedInvoice(inv.ID)
		if removed > 0 {
			s.logger.Debug("linked transactions removed",
				zap.String("invoice_id", inv.ID.String()),
				zap.Int("count", removed),
			)
		}
		if inv.IsCredit() {
			return s.adjustPartnerBalance(inv, true)
		}
		return nil
	}

	if inv.IsCredit() {
		return s.adjustPartnerBalance(inv, false)
	}
	return s.recordLinkedTransaction(inv)
}

// recordLinkedTransaction books the immediate cash/bank movement of a
// non-credit invoice. Exactly one entry per invoice, found again solely
// through RelatedInvoiceID.
func (s *InvoiceService) recordLinkedTransaction(inv *billing.Invoice) error {
	txType, category := invoiceFinancials(inv.Type)

	source := finance.TransactionSourceBank
	if inv.PaymentMethod == billing.PaymentMethodCash {
		source = finance.TransactionSourceCashRegister
	}

	tx, err := finance.NewTransaction(txType, inv.Total, source)
	if err != nil {
		return err
	}
	tx.Date = inv.Date
	tx.Category = category
	tx.Description = fmt.Sprintf("%s invoice %s", strings.ReplaceAll(string(inv.Type), "_", " "), inv.ID)
	tx.BankID = inv.BankID
	tx.PartnerID = inv.PartnerID
	tx.RelatedInvoiceID = inv.ID
	tx.User = inv.CreatedBy
	if tx.User == "" {
		tx.User = "sys"
	}

	return s.transactions.Save(tx)
}

// adjustPartnerBalance applies the credit-settlement balance change for an
// invoice. Sales move the customer balance, purchases the supplier balance;
// a credit return acts as a credit note and reduces the original debt. The
// negate flag produces the exact inverse for reversal.
func (s *InvoiceService) adjustPartnerBalance(inv *billing.Invoice, negate bool) error {
	delta := inv.Total
	switch inv.Type {
	case billing.InvoiceTypeSaleReturn, billing.InvoiceTypePurchaseReturn:
		delta = delta.Neg()
	}
	if negate {
		delta = delta.Neg()
	}

	switch inv.Type {
	case billing.InvoiceTypeSale, billing.InvoiceTypeSaleReturn:
		customer, err := s.customers.FindByID(inv.PartnerID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil
			}
			return err
		}
		customer.AdjustBalance(delta)
		return s.customers.Save(customer)
	case billing.InvoiceTypePurchase, billing.InvoiceTypePurchaseReturn:
		supplier, err := s.suppliers.FindByID(inv.PartnerID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil
			}
			return err
		}
		supplier.AdjustBalance(delta)
		return s.suppliers.Save(supplier)
	}
	return nil
}

// invoiceFinancials maps an invoice type to the ledger entry it produces:
// money comes in on sales and on refunds received back from suppliers, and
// goes out on purchases and on refunds paid to customers.
func invoiceFinancials(t billing.InvoiceType) (finance.TransactionType, string) {
	switch t {
	case billing.InvoiceTypeSale:
		return finance.TransactionTypeIncome, finance.CategorySales
	case billing.InvoiceTypePurchase:
		return finance.TransactionTypeExpense, finance.CategoryPurchase
	case billing.InvoiceTypeSaleReturn:
		return finance.TransactionTypeExpense, finance.CategorySalesReturn
	default:
		return finance.TransactionTypeIncome, finance.CategoryPurchaseReturn
	}
}
