package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/finance"
)

// ReferenceService manages the finance master data: banks, cash registers,
// expense categories and the chart of accounts.
type ReferenceService struct {
	banks      finance.BankAccountRepository
	registers  finance.CashRegisterRepository
	categories finance.ExpenseCategoryRepository
	accounts   finance.AccountRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(
	banks finance.BankAccountRepository,
	registers finance.CashRegisterRepository,
	categories finance.ExpenseCategoryRepository,
	accounts finance.AccountRepository,
) *ReferenceService {
	return &ReferenceService{
		banks:      banks,
		registers:  registers,
		categories: categories,
		accounts:   accounts,
	}
}

// BankAccountInput is the payload for creating or replacing a bank account
type BankAccountInput struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name" binding:"required"`
	AccountNumber  string          `json:"accountNumber"`
	Currency       string          `json:"currency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// CreateBank adds a new bank account
func (s *ReferenceService) CreateBank(input BankAccountInput) (*finance.BankAccount, error) {
	bank, err := finance.NewBankAccount(input.Name, input.AccountNumber, input.Currency)
	if err != nil {
		return nil, err
	}
	bank.InitialBalance = input.InitialBalance
	if err := s.banks.Save(bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// UpdateBank replaces a bank account's content by id
func (s *ReferenceService) UpdateBank(input BankAccountInput) (*finance.BankAccount, error) {
	bank, err := s.banks.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	bank.Name = input.Name
	bank.AccountNumber = input.AccountNumber
	bank.Currency = input.Currency
	bank.InitialBalance = input.InitialBalance
	bank.Touch()
	if err := s.banks.Save(bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// DeleteBank removes a bank account by id
func (s *ReferenceService) DeleteBank(id uuid.UUID) error {
	return s.banks.Remove(id)
}

// ListBanks returns all bank accounts
func (s *ReferenceService) ListBanks() []finance.BankAccount {
	return s.banks.FindAll()
}

// CashRegisterInput is the payload for creating or replacing a cash register
type CashRegisterInput struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name" binding:"required"`
	StoreID uuid.UUID `json:"storeId"`
}

// CreateRegister adds a new cash register
func (s *ReferenceService) CreateRegister(input CashRegisterInput) (*finance.CashRegister, error) {
	register, err := finance.NewCashRegister(input.Name, input.StoreID)
	if err != nil {
		return nil, err
	}
	if err := s.registers.Save(register); err != nil {
		return nil, err
	}
	return register, nil
}

// UpdateRegister replaces a cash register's content by id
func (s *ReferenceService) UpdateRegister(input CashRegisterInput) (*finance.CashRegister, error) {
	register, err := s.registers.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	register.Name = input.Name
	register.StoreID = input.StoreID
	register.Touch()
	if err := s.registers.Save(register); err != nil {
		return nil, err
	}
	return register, nil
}

// DeleteRegister removes a cash register by id
func (s *ReferenceService) DeleteRegister(id uuid.UUID) error {
	return s.registers.Remove(id)
}

// ListRegisters returns all cash registers
func (s *ReferenceService) ListRegisters() []finance.CashRegister {
	return s.registers.FindAll()
}

// ExpenseCategoryInput is the payload for creating or replacing an expense category
type ExpenseCategoryInput struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" binding:"required"`
}

// CreateExpenseCategory adds a new expense category
func (s *ReferenceService) CreateExpenseCategory(input ExpenseCategoryInput) (*finance.ExpenseCategory, error) {
	category, err := finance.NewExpenseCategory(input.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateExpenseCategory replaces an expense category's content by id
func (s *ReferenceService) UpdateExpenseCategory(input ExpenseCategoryInput) (*finance.ExpenseCategory, error) {
	category, err := s.categories.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	category.Name = input.Name
	category.Touch()
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteExpenseCategory removes an expense category by id
func (s *ReferenceService) DeleteExpenseCategory(id uuid.UUID) error {
	return s.categories.Remove(id)
}

// ListExpenseCategories returns all expense categories
func (s *ReferenceService) ListExpenseCategories() []finance.ExpenseCategory {
	return s.categories.FindAll()
}

// AccountInput is the payload for creating or replacing a chart-of-accounts node
type AccountInput struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Level        int       `json:"level" binding:"required,min=1"`
	ParentID     uuid.UUID `json:"parentId"`
	SystemLink   string    `json:"systemLink"`
	SystemLinkID uuid.UUID `json:"systemLinkId"`
}

// CreateAccount adds a new chart-of-accounts node
func (s *ReferenceService) CreateAccount(input AccountInput) (*finance.Account, error) {
	account, err := finance.NewAccount(input.Code, input.Name, input.Level)
	if err != nil {
		return nil, err
	}
	account.ParentID = input.ParentID
	if input.SystemLink != "" {
		account.SystemLink = finance.SystemLink(input.SystemLink)
	}
	account.SystemLinkID = input.SystemLinkID
	if err := s.accounts.Save(account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateAccount replaces a chart-of-accounts node's content by id
func (s *ReferenceService) UpdateAccount(input AccountInput) (*finance.Account, error) {
	account, err := s.accounts.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	account.Code = input.Code
	account.Name = input.Name
	account.Level = input.Level
	account.ParentID = input.ParentID
	if input.SystemLink != "" {
		account.SystemLink = finance.SystemLink(input.SystemLink)
	} else {
		account.SystemLink = finance.SystemLinkNone
	}
	account.SystemLinkID = input.SystemLinkID
	account.Touch()
	if err := s.accounts.Save(account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes a chart-of-accounts node by id
func (s *ReferenceService) DeleteAccount(id uuid.UUID) error {
	return s.accounts.Remove(id)
}

// ListAccounts returns the chart of accounts in insertion order
func (s *ReferenceService) ListAccounts() []finance.Account {
	return s.accounts.FindAll()
}
