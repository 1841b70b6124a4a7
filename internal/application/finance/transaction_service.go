// Package finance hosts the manual transaction ledger and the finance
// reference data (banks, registers, expense categories, chart of accounts).
package finance

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vinpos/backend/internal/domain/finance"
	"github.com/vinpos/backend/internal/domain/partner"
	"github.com/vinpos/backend/internal/domain/shared"
)

// TransactionService records standalone income/expense entries. A standalone
// entry that references a partner settles part of that partner's running
// balance; the side effect is reversed symmetrically when the entry is edited
// or removed. Entries created by the invoice engine pass through storage only
// and never trigger the side effect here.
type TransactionService struct {
	transactions finance.TransactionRepository
	customers    partner.CustomerRepository
	suppliers    partner.SupplierRepository
	logger       *zap.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactions finance.TransactionRepository,
	customers partner.CustomerRepository,
	suppliers partner.SupplierRepository,
	logger *zap.Logger,
) *TransactionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionService{
		transactions: transactions,
		customers:    customers,
		suppliers:    suppliers,
		logger:       logger,
	}
}

// TransactionInput is the payload for a manual ledger entry. Invoice linkage
// cannot be set by clients; it belongs to the invoice engine.
type TransactionInput struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Source      string          `json:"source" binding:"required,oneof=CASH_REGISTER BANK"`
	BankID      uuid.UUID       `json:"bankId"`
	PartnerID   uuid.UUID       `json:"partnerId"`
	User        string          `json:"user"`
}

// ToDomain converts the input into a ledger entry
func (in TransactionInput) ToDomain() (*finance.Transaction, error) {
	tx, err := finance.NewTransaction(finance.TransactionType(in.Type), in.Amount, finance.TransactionSource(in.Source))
	if err != nil {
		return nil, err
	}
	if in.ID != uuid.Nil {
		tx.ID = in.ID
	}
	if !in.Date.IsZero() {
		tx.Date = in.Date
	}
	tx.Category = in.Category
	tx.Description = in.Description
	tx.BankID = in.BankID
	tx.PartnerID = in.PartnerID
	tx.User = in.User
	return tx, nil
}

// Add stores a manual entry and applies its partner side effect, if any
func (s *TransactionService) Add(input TransactionInput) (*finance.Transaction, error) {
	tx, err := input.ToDomain()
	if err != nil {
		return nil, err
	}

	if err := s.transactions.Save(tx); err != nil {
		return nil, err
	}
	if err := s.applySideEffect(tx, false); err != nil {
		return nil, err
	}

	s.logger.Info("transaction added",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("type", string(tx.Type)),
		zap.String("amount", tx.Amount.String()),
	)
	return tx, nil
}

// Update replaces an entry's content by id, reversing the old side effect
// before applying the new one. An entry created by the invoice engine keeps
// its invoice linkage across the edit.
func (s *TransactionService) Update(input TransactionInput) (*finance.Transaction, error) {
	old, err := s.transactions.FindByID(input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := input.ToDomain()
	if err != nil {
		return nil, err
	}
	tx.RelatedInvoiceID = old.RelatedInvoiceID
	tx.CreatedAt = old.CreatedAt

	if err := s.applySideEffect(old, true); err != nil {
		return nil, err
	}
	if err := s.applySideEffect(tx, false); err != nil {
		return nil, err
	}
	if err := s.transactions.Save(tx); err != nil {
		return nil, err
	}

	s.logger.Info("transaction updated", zap.String("transaction_id", tx.ID.String()))
	return tx, nil
}

// Delete removes an entry, reversing its partner side effect first. A missing
// id is a silent no-op.
func (s *TransactionService) Delete(id uuid.UUID) error {
	tx, err := s.transactions.FindByID(id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.applySideEffect(tx, true); err != nil {
		return err
	}
	if err := s.transactions.Remove(id); err != nil {
		return err
	}

	s.logger.Info("transaction deleted", zap.String("transaction_id", id.String()))
	return nil
}

// GetByID returns one ledger entry
func (s *TransactionService) GetByID(id uuid.UUID) (*finance.Transaction, error) {
	return s.transactions.FindByID(id)
}

// List returns the full ledger in insertion order
func (s *TransactionService) List() []finance.Transaction {
	return s.transactions.FindAll()
}

// applySideEffect adjusts the referenced partner's balance for a standalone
// entry. An INCOME against a customer is a payment received and reduces what
// the customer owes; an EXPENSE against a supplier is a payment made and
// reduces what is owed to the supplier. The conventions mirror each other on
// purpose. negate=true produces the exact inverse for reversal.
func (s *TransactionService) applySideEffect(tx *finance.Transaction, negate bool) error {
	if !tx.HasPartnerSideEffect() {
		return nil
	}

	customer, err := s.customers.FindByID(tx.PartnerID)
	if err == nil {
		delta := tx.Amount
		if tx.Type == finance.TransactionTypeIncome {
			delta = delta.Neg()
		}
		if negate {
			delta = delta.Neg()
		}
		customer.AdjustBalance(delta)
		return s.customers.Save(customer)
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	supplier, err := s.suppliers.FindByID(tx.PartnerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	delta := tx.Amount
	if tx.Type == finance.TransactionTypeExpense {
		delta = delta.Neg()
	}
	if negate {
		delta = delta.Neg()
	}
	supplier.AdjustBalance(delta)
	return s.suppliers.Save(supplier)
}
