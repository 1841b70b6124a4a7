package memory

import (
	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/finance"
	"github.com/vinpos/backend/internal/domain/shared"
)

// TransactionRepository is the in-memory finance.TransactionRepository
type TransactionRepository struct {
	transactions *collection[finance.Transaction]
}

// NewTransactionRepository creates an empty transaction repository
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{transactions: newCollection(shallow[finance.Transaction])}
}

// FindByID finds a ledger entry by its ID
func (r *TransactionRepository) FindByID(id uuid.UUID) (*finance.Transaction, error) {
	return r.transactions.get(id)
}

// FindAll returns all ledger entries in insertion order
func (r *TransactionRepository) FindAll() []finance.Transaction {
	return r.transactions.all()
}

// FindByRelatedInvoice returns the entries linked to an invoice. A nil id
// matches nothing; manual entries carry a nil link and must never be swept up.
func (r *TransactionRepository) FindByRelatedInvoice(invoiceID uuid.UUID) []finance.Transaction {
	if invoiceID == uuid.Nil {
		return nil
	}
	return r.transactions.filter(func(t *finance.Transaction) bool {
		return t.RelatedInvoiceID == invoiceID
	})
}

// Save creates or replaces a ledger entry
func (r *TransactionRepository) Save(tx *finance.Transaction) error {
	if tx == nil || tx.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.transactions.put(tx.ID, tx)
	return nil
}

// Remove deletes a ledger entry by ID
func (r *TransactionRepository) Remove(id uuid.UUID) error {
	return r.transactions.remove(id)
}

// RemoveByRelatedInvoice deletes every entry linked to the invoice. A nil id
// deletes nothing.
func (r *TransactionRepository) RemoveByRelatedInvoice(invoiceID uuid.UUID) int {
	if invoiceID == uuid.Nil {
		return 0
	}
	return r.transactions.removeWhere(func(t *finance.Transaction) bool {
		return t.RelatedInvoiceID == invoiceID
	})
}

// BankAccountRepository is the in-memory finance.BankAccountRepository
type BankAccountRepository struct {
	banks *collection[finance.BankAccount]
}

// NewBankAccountRepository creates an empty bank account repository
func NewBankAccountRepository() *BankAccountRepository {
	return &BankAccountRepository{banks: newCollection(shallow[finance.BankAccount])}
}

// FindByID finds a bank account by its ID
func (r *BankAccountRepository) FindByID(id uuid.UUID) (*finance.BankAccount, error) {
	return r.banks.get(id)
}

// FindAll returns all bank accounts
func (r *BankAccountRepository) FindAll() []finance.BankAccount {
	return r.banks.all()
}

// Save creates or replaces a bank account
func (r *BankAccountRepository) Save(bank *finance.BankAccount) error {
	if bank == nil || bank.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.banks.put(bank.ID, bank)
	return nil
}

// Remove deletes a bank account by ID
func (r *BankAccountRepository) Remove(id uuid.UUID) error {
	return r.banks.remove(id)
}

// CashRegisterRepository is the in-memory finance.CashRegisterRepository
type CashRegisterRepository struct {
	registers *collection[finance.CashRegister]
}

// NewCashRegisterRepository creates an empty cash register repository
func NewCashRegisterRepository() *CashRegisterRepository {
	return &CashRegisterRepository{registers: newCollection(shallow[finance.CashRegister])}
}

// FindByID finds a cash register by its ID
func (r *CashRegisterRepository) FindByID(id uuid.UUID) (*finance.CashRegister, error) {
	return r.registers.get(id)
}

// FindAll returns all cash registers
func (r *CashRegisterRepository) FindAll() []finance.CashRegister {
	return r.registers.all()
}

// Save creates or replaces a cash register
func (r *CashRegisterRepository) Save(register *finance.CashRegister) error {
	if register == nil || register.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.registers.put(register.ID, register)
	return nil
}

// Remove deletes a cash register by ID
func (r *CashRegisterRepository) Remove(id uuid.UUID) error {
	return r.registers.remove(id)
}

// ExpenseCategoryRepository is the in-memory finance.ExpenseCategoryRepository
type ExpenseCategoryRepository struct {
	categories *collection[finance.ExpenseCategory]
}

// NewExpenseCategoryRepository creates an empty expense category repository
func NewExpenseCategoryRepository() *ExpenseCategoryRepository {
	return &ExpenseCategoryRepository{categories: newCollection(shallow[finance.ExpenseCategory])}
}

// FindByID finds an expense category by its ID
func (r *ExpenseCategoryRepository) FindByID(id uuid.UUID) (*finance.ExpenseCategory, error) {
	return r.categories.get(id)
}

// FindAll returns all expense categories
func (r *ExpenseCategoryRepository) FindAll() []finance.ExpenseCategory {
	return r.categories.all()
}

// Save creates or replaces an expense category
func (r *ExpenseCategoryRepository) Save(category *finance.ExpenseCategory) error {
	if category == nil || category.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.categories.put(category.ID, category)
	return nil
}

// Remove deletes an expense category by ID
func (r *ExpenseCategoryRepository) Remove(id uuid.UUID) error {
	return r.categories.remove(id)
}

// AccountRepository is the in-memory finance.AccountRepository
type AccountRepository struct {
	accounts *collection[finance.Account]
}

// NewAccountRepository creates an empty chart-of-accounts repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: newCollection(shallow[finance.Account])}
}

// FindByID finds an account node by its ID
func (r *AccountRepository) FindByID(id uuid.UUID) (*finance.Account, error) {
	return r.accounts.get(id)
}

// FindAll returns the chart of accounts in insertion order
func (r *AccountRepository) FindAll() []finance.Account {
	return r.accounts.all()
}

// Save creates or replaces an account node
func (r *AccountRepository) Save(account *finance.Account) error {
	if account == nil || account.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.accounts.put(account.ID, account)
	return nil
}

// Remove deletes an account node by ID
func (r *AccountRepository) Remove(id uuid.UUID) error {
	return r.accounts.remove(id)
}
