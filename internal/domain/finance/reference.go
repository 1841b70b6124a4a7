package finance

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/shared"
)

// BankAccount is a bank the business settles card and transfer payments through
type BankAccount struct {
	shared.BaseEntity
	Name           string          `json:"name"`
	AccountNumber  string          `json:"accountNumber"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// NewBankAccount creates a new bank account record
func NewBankAccount(name, accountNumber, currency string) (*BankAccount, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Bank name cannot be empty")
	}
	return &BankAccount{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		AccountNumber:  accountNumber,
		Currency:       currency,
		InitialBalance: decimal.Zero,
	}, nil
}

// CashRegister is a physical till inside a store. Purely organizational;
// the ledger engine never consumes it.
type CashRegister struct {
	shared.BaseEntity
	Name    string    `json:"name"`
	StoreID uuid.UUID `json:"storeId"`
}

// NewCashRegister creates a new cash register record
func NewCashRegister(name string, storeID uuid.UUID) (*CashRegister, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Cash register name cannot be empty")
	}
	return &CashRegister{BaseEntity: shared.NewBaseEntity(), Name: name, StoreID: storeID}, nil
}

// ExpenseCategory labels manual expense transactions
type ExpenseCategory struct {
	shared.BaseEntity
	Name string `json:"name"`
}

// NewExpenseCategory creates a new expense category
func NewExpenseCategory(name string) (*ExpenseCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Expense category name cannot be empty")
	}
	return &ExpenseCategory{BaseEntity: shared.NewBaseEntity(), Name: name}, nil
}
