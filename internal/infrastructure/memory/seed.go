package memory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/finance"
	"github.com/vinpos/backend/internal/domain/identity"
	"github.com/vinpos/backend/internal/domain/inventory"
	"github.com/vinpos/backend/internal/domain/partner"
)

// Seed fills an empty store with the demo dataset: one warehouse and one
// store, a small catalog, walk-in and corporate partners, banks, registers
// and the reference chart of accounts. It also pins the default location and
// default bank into settings so the engines have a main warehouse to fall
// back to.
func Seed(store *Store) error {
	mainWarehouse, err := inventory.NewLocation("Main Warehouse", inventory.LocationTypeWarehouse)
	if err != nil {
		return err
	}
	centralStore, err := inventory.NewLocation("Central Store", inventory.LocationTypeStore)
	if err != nil {
		return err
	}
	centralStore.LinkedWarehouseIDs = []uuid.UUID{mainWarehouse.ID}
	if err := store.Locations.Save(mainWarehouse); err != nil {
		return err
	}
	if err := store.Locations.Save(centralStore); err != nil {
		return err
	}

	piece, err := catalog.NewUnit("Piece", "pc")
	if err != nil {
		return err
	}
	kilogram, err := catalog.NewUnit("Kilogram", "kg")
	if err != nil {
		return err
	}
	if err := store.Units.Save(piece); err != nil {
		return err
	}
	if err := store.Units.Save(kilogram); err != nil {
		return err
	}

	electronics, _ := catalog.NewCategory("Electronics")
	apparel, _ := catalog.NewCategory("Apparel")
	grocery, _ := catalog.NewCategory("Grocery")
	for _, c := range []*catalog.Category{electronics, apparel, grocery} {
		if err := store.Categories.Save(c); err != nil {
			return err
		}
	}

	sony, _ := catalog.NewBrand("Sony")
	samsung, _ := catalog.NewBrand("Samsung")
	nike, _ := catalog.NewBrand("Nike")
	for _, b := range []*catalog.Brand{sony, samsung, nike} {
		if err := store.Brands.Save(b); err != nil {
			return err
		}
	}

	seedProducts := []struct {
		code, barcode, name string
		brand, category     uuid.UUID
		sales, purchase     float64
		warehouseQty        int64
		storeQty            int64
	}{
		{"P001", "123456789", "Sony WH-1000XM5 Headphones", sony.ID, electronics.ID, 450, 350, 30, 20},
		{"P002", "987654321", "Samsung Galaxy S24", samsung.ID, electronics.ID, 2100, 1800, 10, 5},
		{"P003", "456123789", "Nike Air Max", nike.ID, apparel.ID, 250, 120, 80, 20},
	}
	for _, sp := range seedProducts {
		p, err := catalog.NewProduct(sp.code, sp.name)
		if err != nil {
			return err
		}
		p.Barcode = sp.barcode
		p.BrandID = sp.brand
		p.CategoryID = sp.category
		p.UnitID = piece.ID
		if err := p.SetPrices(decimal.NewFromFloat(sp.sales), decimal.NewFromFloat(sp.purchase)); err != nil {
			return err
		}
		if err := p.SetVAT(decimal.NewFromInt(18), true); err != nil {
			return err
		}
		p.AdjustStock(mainWarehouse.ID, decimal.NewFromInt(sp.warehouseQty))
		p.AdjustStock(centralStore.ID, decimal.NewFromInt(sp.storeQty))
		if err := store.Products.Save(p); err != nil {
			return err
		}
	}

	walkIn, err := partner.NewCustomer("Walk-in Customer", partner.CustomerTypeGeneral)
	if err != nil {
		return err
	}
	individual, _ := partner.NewCustomer("Ali Veliyev", partner.CustomerTypeIndividual)
	individual.Phone = "+994 55 555 55 55"
	_ = individual.SetDiscountRate(decimal.NewFromInt(5))
	corporate, _ := partner.NewCustomer("Techno LLC", partner.CustomerTypeCorporate)
	corporate.Phone = "+994 12 444 44 44"
	corporate.DueDay = 30
	_ = corporate.SetDiscountRate(decimal.NewFromInt(10))
	corporate.AdjustBalance(decimal.NewFromInt(-500))
	for _, c := range []*partner.Customer{walkIn, individual, corporate} {
		if err := store.Customers.Save(c); err != nil {
			return err
		}
	}

	supplier, err := partner.NewSupplier("Global Electronics LLC")
	if err != nil {
		return err
	}
	supplier.ContactPerson = "Rashad M."
	supplier.Phone = "+994 12 333 33 33"
	supplier.AdjustBalance(decimal.NewFromInt(2000))
	if err := store.Suppliers.Save(supplier); err != nil {
		return err
	}

	for _, name := range []string{"Rent", "Utilities", "Salaries", "Other"} {
		ec, err := finance.NewExpenseCategory(name)
		if err != nil {
			return err
		}
		if err := store.ExpenseCategories.Save(ec); err != nil {
			return err
		}
	}

	kapital, err := finance.NewBankAccount("Kapital Bank", "AZ123456789012345678", "AZN")
	if err != nil {
		return err
	}
	kapital.InitialBalance = decimal.NewFromInt(5000)
	pasha, _ := finance.NewBankAccount("Pasha Bank", "AZ098765432109876543", "AZN")
	pasha.InitialBalance = decimal.NewFromInt(12000)
	if err := store.Banks.Save(kapital); err != nil {
		return err
	}
	if err := store.Banks.Save(pasha); err != nil {
		return err
	}

	for _, name := range []string{"Register 1", "Register 2"} {
		cr, err := finance.NewCashRegister(name, centralStore.ID)
		if err != nil {
			return err
		}
		if err := store.CashRegisters.Save(cr); err != nil {
			return err
		}
	}

	if err := seedAccounts(store, kapital.ID, pasha.ID, electronics.ID, corporate.ID); err != nil {
		return err
	}

	adminRole, err := identity.NewRole("Administrator", []identity.Permission{
		identity.PermViewDashboard, identity.PermViewPOS, identity.PermViewProducts,
		identity.PermViewSales, identity.PermViewPurchases, identity.PermViewReturns,
		identity.PermViewFinance, identity.PermViewAccounting, identity.PermViewTransfer,
		identity.PermViewHR, identity.PermViewPartners, identity.PermViewReports,
		identity.PermViewAdmin, identity.PermManageUsers,
	})
	if err != nil {
		return err
	}
	managerRole, _ := identity.NewRole("Store Manager", []identity.Permission{
		identity.PermViewDashboard, identity.PermViewPOS, identity.PermViewProducts,
		identity.PermViewSales, identity.PermViewPurchases, identity.PermViewReturns,
		identity.PermViewTransfer, identity.PermViewReports, identity.PermViewPartners,
	})
	cashierRole, _ := identity.NewRole("Cashier", []identity.Permission{
		identity.PermViewPOS, identity.PermViewSales, identity.PermViewReturns,
	})
	for _, r := range []*identity.Role{adminRole, managerRole, cashierRole} {
		if err := store.Roles.Save(r); err != nil {
			return err
		}
	}

	admin, err := identity.NewUser("admin", "1234", adminRole.ID)
	if err != nil {
		return err
	}
	admin.FirstName = "Admin"
	admin.LastName = "User"
	admin.AllowedStoreIDs = []uuid.UUID{centralStore.ID}
	admin.AllowedWarehouseIDs = []uuid.UUID{mainWarehouse.ID}
	staff, err := identity.NewUser("staff", "1234", cashierRole.ID)
	if err != nil {
		return err
	}
	staff.FirstName = "Elvin"
	staff.LastName = "Mammadov"
	staff.AllowedStoreIDs = []uuid.UUID{centralStore.ID}
	if err := store.Users.Save(admin); err != nil {
		return err
	}
	if err := store.Users.Save(staff); err != nil {
		return err
	}

	settings := store.Settings.Get()
	settings.DefaultLocationID = mainWarehouse.ID
	settings.DefaultBankID = kapital.ID
	store.Settings.Update(settings)

	return nil
}

// seedAccounts builds the static chart-of-accounts reference tree. Nothing is
// ever posted to it.
func seedAccounts(store *Store, kapitalID, pashaID, electronicsID, corporateID uuid.UUID) error {
	assets, err := finance.NewAccount("100", "Assets", 1)
	if err != nil {
		return err
	}
	current, _ := finance.NewAccount("101", "Current Assets", 2)
	current.ParentID = assets.ID
	cash, _ := finance.NewAccount("101.1", "Cash", 3)
	cash.ParentID = current.ID
	cash.SystemLink = finance.SystemLinkCash
	bankAccounts, _ := finance.NewAccount("101.2", "Bank Accounts", 3)
	bankAccounts.ParentID = current.ID
	kapitalNode, _ := finance.NewAccount("101.2.1", "Kapital Bank", 4)
	kapitalNode.ParentID = bankAccounts.ID
	kapitalNode.SystemLink = finance.SystemLinkBank
	kapitalNode.SystemLinkID = kapitalID
	pashaNode, _ := finance.NewAccount("101.2.2", "Pasha Bank", 4)
	pashaNode.ParentID = bankAccounts.ID
	pashaNode.SystemLink = finance.SystemLinkBank
	pashaNode.SystemLinkID = pashaID
	inventoryNode, _ := finance.NewAccount("101.3", "Inventory", 3)
	inventoryNode.ParentID = current.ID
	electronicsNode, _ := finance.NewAccount("101.3.1", "Electronics", 4)
	electronicsNode.ParentID = inventoryNode.ID
	electronicsNode.SystemLink = finance.SystemLinkInventory
	electronicsNode.SystemLinkID = electronicsID
	receivables, _ := finance.NewAccount("101.4", "Accounts Receivable", 3)
	receivables.ParentID = current.ID
	corporateAR, _ := finance.NewAccount("101.4.1", "Techno LLC Receivable", 4)
	corporateAR.ParentID = receivables.ID
	corporateAR.SystemLink = finance.SystemLinkCustomerAR
	corporateAR.SystemLinkID = corporateID

	liabilities, _ := finance.NewAccount("200", "Liabilities", 1)
	payables, _ := finance.NewAccount("201", "Accounts Payable", 2)
	payables.ParentID = liabilities.ID
	equity, _ := finance.NewAccount("300", "Equity", 1)
	income, _ := finance.NewAccount("400", "Income", 1)
	salesIncome, _ := finance.NewAccount("401", "Sales Income", 2)
	salesIncome.ParentID = income.ID
	salesIncome.SystemLink = finance.SystemLinkSales
	expenses, _ := finance.NewAccount("500", "Expenses", 1)
	adminExpenses, _ := finance.NewAccount("501", "Administrative Expenses", 2)
	adminExpenses.ParentID = expenses.ID
	adminExpenses.SystemLink = finance.SystemLinkExpense

	nodes := []*finance.Account{
		assets, current, cash, bankAccounts, kapitalNode, pashaNode,
		inventoryNode, electronicsNode, receivables, corporateAR,
		liabilities, payables, equity, income, salesIncome, expenses, adminExpenses,
	}
	for _, n := range nodes {
		if err := store.Accounts.Save(n); err != nil {
			return err
		}
	}
	return nil
}
