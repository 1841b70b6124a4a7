package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/shared"
)

// TransactionType represents the direction of a money movement
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// TransactionSource represents where the money moves through
type TransactionSource string

const (
	TransactionSourceCashRegister TransactionSource = "CASH_REGISTER"
	TransactionSourceBank         TransactionSource = "BANK"
)

// Transaction category values produced by the invoice engine. Manual
// transactions carry free-form categories (usually an expense category name).
const (
	CategorySales          = "SALES"
	CategoryPurchase       = "PURCHASE"
	CategorySalesReturn    = "SALES_RETURN"
	CategoryPurchaseReturn = "PURCHASE_RETURN"
)

// Transaction is one cash or bank ledger entry. Entries created by the
// invoice engine carry RelatedInvoiceID, which is the sole key used to find
// and delete them when the owning invoice is reversed. Manual entries leave
// it nil and may instead carry a PartnerID that triggers a balance side
// effect.
type Transaction struct {
	shared.BaseEntity
	Date             time.Time         `json:"date"`
	Type             TransactionType   `json:"type"`
	Category         string            `json:"category"`
	Amount           decimal.Decimal   `json:"amount"`
	Description      string            `json:"description"`
	Source           TransactionSource `json:"source"`
	BankID           uuid.UUID         `json:"bankId"`
	PartnerID        uuid.UUID         `json:"partnerId"`
	RelatedInvoiceID uuid.UUID         `json:"relatedInvoiceId"`
	User             string            `json:"user"`
}

// NewTransaction creates a ledger entry
func NewTransaction(txType TransactionType, amount decimal.Decimal, source TransactionSource) (*Transaction, error) {
	switch txType {
	case TransactionTypeIncome, TransactionTypeExpense:
	default:
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown transaction type")
	}
	switch source {
	case TransactionSourceCashRegister, TransactionSourceBank:
	default:
		return nil, shared.NewDomainError("INVALID_SOURCE", "Unknown transaction source")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount cannot be negative")
	}

	return &Transaction{
		BaseEntity: shared.NewBaseEntity(),
		Date:       time.Now(),
		Type:       txType,
		Amount:     amount,
		Source:     source,
	}, nil
}

// IsInvoiceLinked reports whether this entry was produced by the invoice engine
func (t *Transaction) IsInvoiceLinked() bool {
	return t.RelatedInvoiceID != uuid.Nil
}

// HasPartnerSideEffect reports whether adding or removing this entry must
// adjust a partner balance: only standalone entries that reference a partner.
func (t *Transaction) HasPartnerSideEffect() bool {
	return t.PartnerID != uuid.Nil && !t.IsInvoiceLinked()
}
