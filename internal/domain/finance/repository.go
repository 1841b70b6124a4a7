package finance

import (
	"github.com/google/uuid"
)

// TransactionRepository defines the interface for ledger entry storage
type TransactionRepository interface {
	FindByID(id uuid.UUID) (*Transaction, error)
	FindAll() []Transaction
	FindByRelatedInvoice(invoiceID uuid.UUID) []Transaction
	Save(tx *Transaction) error
	Remove(id uuid.UUID) error
	// RemoveByRelatedInvoice deletes every entry linked to the invoice and
	// returns how many were removed.
	RemoveByRelatedInvoice(invoiceID uuid.UUID) int
}

// BankAccountRepository defines the interface for bank account storage
type BankAccountRepository interface {
	FindByID(id uuid.UUID) (*BankAccount, error)
	FindAll() []BankAccount
	Save(bank *BankAccount) error
	Remove(id uuid.UUID) error
}

// CashRegisterRepository defines the interface for cash register storage
type CashRegisterRepository interface {
	FindByID(id uuid.UUID) (*CashRegister, error)
	FindAll() []CashRegister
	Save(register *CashRegister) error
	Remove(id uuid.UUID) error
}

// ExpenseCategoryRepository defines the interface for expense category storage
type ExpenseCategoryRepository interface {
	FindByID(id uuid.UUID) (*ExpenseCategory, error)
	FindAll() []ExpenseCategory
	Save(category *ExpenseCategory) error
	Remove(id uuid.UUID) error
}

// AccountRepository defines the interface for chart-of-accounts storage
type AccountRepository interface {
	FindByID(id uuid.UUID) (*Account, error)
	FindAll() []Account
	Save(account *Account) error
	Remove(id uuid.UUID) error
}
