package memory

import (
	"github.com/vinpos/backend/internal/domain/shared"
)

// Store owns every in-memory collection. It is created once at process start,
// injected into the application services, and torn down with the process.
type Store struct {
	Products          *ProductRepository
	Categories        *CategoryRepository
	Brands            *BrandRepository
	Units             *UnitRepository
	Customers         *CustomerRepository
	Suppliers         *SupplierRepository
	Invoices          *InvoiceRepository
	Transactions      *TransactionRepository
	Banks             *BankAccountRepository
	CashRegisters     *CashRegisterRepository
	ExpenseCategories *ExpenseCategoryRepository
	Accounts          *AccountRepository
	Locations         *LocationRepository
	Transfers         *TransferRepository
	Users             *UserRepository
	Roles             *RoleRepository
	Employees         *EmployeeRepository
	Leaves            *LeaveRequestRepository
	Settings          *SettingsRepository
}

// NewStore creates an empty store with the given initial settings
func NewStore(settings shared.Settings) *Store {
	return &Store{
		Products:          NewProductRepository(),
		Categories:        NewCategoryRepository(),
		Brands:            NewBrandRepository(),
		Units:             NewUnitRepository(),
		Customers:         NewCustomerRepository(),
		Suppliers:         NewSupplierRepository(),
		Invoices:          NewInvoiceRepository(),
		Transactions:      NewTransactionRepository(),
		Banks:             NewBankAccountRepository(),
		CashRegisters:     NewCashRegisterRepository(),
		ExpenseCategories: NewExpenseCategoryRepository(),
		Accounts:          NewAccountRepository(),
		Locations:         NewLocationRepository(),
		Transfers:         NewTransferRepository(),
		Users:             NewUserRepository(),
		Roles:             NewRoleRepository(),
		Employees:         NewEmployeeRepository(),
		Leaves:            NewLeaveRequestRepository(),
		Settings:          NewSettingsRepository(settings),
	}
}
