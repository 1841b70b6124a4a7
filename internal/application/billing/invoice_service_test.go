package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinpos/backend/internal/domain/billing"
	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/finance"
	"github.com/vinpos/backend/internal/domain/partner"
	"github.com/vinpos/backend/internal/domain/shared"
	"github.com/vinpos/backend/internal/infrastructure/memory"
)

type invoiceFixture struct {
	svc        *InvoiceService
	store      *memory.Store
	product    *catalog.Product
	customer   *partner.Customer
	supplier   *partner.Supplier
	locationID uuid.UUID
}

func newInvoiceFixture(t *testing.T, allowNegativeStock bool) *invoiceFixture {
	t.Helper()

	locationID := uuid.New()
	store := memory.NewStore(shared.Settings{
		Currency:           "AZN",
		AllowNegativeStock: allowNegativeStock,
		DefaultLocationID:  locationID,
	})

	product, err := catalog.NewProduct("P001", "Test Product")
	require.NoError(t, err)
	product.AdjustStock(locationID, decimal.NewFromInt(50))
	require.NoError(t, store.Products.Save(product))

	customer, err := partner.NewCustomer("Acme Retail", partner.CustomerTypeCorporate)
	require.NoError(t, err)
	require.NoError(t, store.Customers.Save(customer))

	supplier, err := partner.NewSupplier("Gilan Distribution")
	require.NoError(t, err)
	require.NoError(t, store.Suppliers.Save(supplier))

	svc := NewInvoiceService(
		store.Invoices, store.Products, store.Customers, store.Suppliers,
		store.Transactions, store.Settings, nil,
	)
	return &invoiceFixture{
		svc:        svc,
		store:      store,
		product:    product,
		customer:   customer,
		supplier:   supplier,
		locationID: locationID,
	}
}

func (f *invoiceFixture) stock(t *testing.T) decimal.Decimal {
	t.Helper()
	product, err := f.store.Products.FindByID(f.product.ID)
	require.NoError(t, err)
	return product.StockAt(f.locationID)
}

func (f *invoiceFixture) customerBalance(t *testing.T) decimal.Decimal {
	t.Helper()
	customer, err := f.store.Customers.FindByID(f.customer.ID)
	require.NoError(t, err)
	return customer.Balance
}

func (f *invoiceFixture) supplierBalance(t *testing.T) decimal.Decimal {
	t.Helper()
	supplier, err := f.store.Suppliers.FindByID(f.supplier.ID)
	require.NoError(t, err)
	return supplier.Balance
}

func (f *invoiceFixture) saleInput(qty int64, total int64, payment string) InvoiceInput {
	return InvoiceInput{
		Type:      "SALE",
		PartnerID: f.customer.ID,
		Items: []InvoiceItemInput{{
			ProductID: f.product.ID,
			Quantity:  decimal.NewFromInt(qty),
			Price:     decimal.NewFromInt(total / qty),
			Total:     decimal.NewFromInt(total),
		}},
		Total:         decimal.NewFromInt(total),
		PaymentMethod: payment,
	}
}

func TestCreateSaleDepletesStockAndBooksIncome(t *testing.T) {
	f := newInvoiceFixture(t, true)

	inv, err := f.svc.Create(f.saleInput(5, 250, "CASH"))
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(45)), "stock = %s", f.stock(t))

	linked := f.store.Transactions.FindByRelatedInvoice(inv.ID)
	require.Len(t, linked, 1)
	tx := linked[0]
	assert.Equal(t, finance.TransactionTypeIncome, tx.Type)
	assert.Equal(t, finance.TransactionSourceCashRegister, tx.Source)
	assert.Equal(t, finance.CategorySales, tx.Category)
	assert.True(t, tx.Amount.Equal(inv.Total))
	assert.Equal(t, inv.ID, tx.RelatedInvoiceID)

	// Cash sales leave the customer balance alone
	assert.True(t, f.customerBalance(t).IsZero())
}

func TestCreatePurchaseRaisesStockAndBooksExpense(t *testing.T) {
	f := newInvoiceFixture(t, true)

	inv, err := f.svc.Create(InvoiceInput{
		Type:      "PURCHASE",
		PartnerID: f.supplier.ID,
		Items: []InvoiceItemInput{{
			ProductID: f.product.ID,
			Quantity:  decimal.NewFromInt(10),
		}},
		Total:         decimal.NewFromInt(400),
		PaymentMethod: "CARD",
	})
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(60)), "stock = %s", f.stock(t))

	linked := f.store.Transactions.FindByRelatedInvoice(inv.ID)
	require.Len(t, linked, 1)
	assert.Equal(t, finance.TransactionTypeExpense, linked[0].Type)
	assert.Equal(t, finance.TransactionSourceBank, linked[0].Source)
	assert.Equal(t, finance.CategoryPurchase, linked[0].Category)
}

func TestCreateCreditSaleAdjustsBalanceWithoutLedgerEntry(t *testing.T) {
	f := newInvoiceFixture(t, true)

	// Customer starts with 500 of store credit
	customer, err := f.store.Customers.FindByID(f.customer.ID)
	require.NoError(t, err)
	customer.AdjustBalance(decimal.NewFromInt(-500))
	require.NoError(t, f.store.Customers.Save(customer))

	inv, err := f.svc.Create(f.saleInput(5, 300, "CREDIT"))
	require.NoError(t, err)

	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(-200)),
		"balance = %s", f.customerBalance(t))
	assert.Empty(t, f.store.Transactions.FindByRelatedInvoice(inv.ID))

	// Deleting the invoice restores the prior balance exactly
	require.NoError(t, f.svc.Delete(inv.ID))
	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(-500)),
		"balance = %s", f.customerBalance(t))
}

func TestCreateCreditPurchaseRaisesSupplierDebt(t *testing.T) {
	f := newInvoiceFixture(t, true)

	_, err := f.svc.Create(InvoiceInput{
		Type:      "PURCHASE",
		PartnerID: f.supplier.ID,
		Items: []InvoiceItemInput{{
			ProductID: f.product.ID,
			Quantity:  decimal.NewFromInt(10),
		}},
		Total:         decimal.NewFromInt(800),
		PaymentMethod: "CREDIT",
	})
	require.NoError(t, err)

	assert.True(t, f.supplierBalance(t).Equal(decimal.NewFromInt(800)),
		"balance = %s", f.supplierBalance(t))
	assert.Empty(t, f.store.Transactions.FindAll())
}

func TestDeleteReversesStockAndRemovesLedgerEntry(t *testing.T) {
	f := newInvoiceFixture(t, true)

	inv, err := f.svc.Create(f.saleInput(5, 250, "CASH"))
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(inv.ID))

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(50)), "stock = %s", f.stock(t))
	assert.Empty(t, f.store.Transactions.FindAll())

	_, err = f.store.Invoices.FindByID(inv.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteMissingInvoiceIsNoOp(t *testing.T) {
	f := newInvoiceFixture(t, true)
	assert.NoError(t, f.svc.Delete(uuid.New()))
}

func TestUpdateNetsAgainstPriorApplication(t *testing.T) {
	f := newInvoiceFixture(t, true)

	inv, err := f.svc.Create(f.saleInput(5, 250, "CASH"))
	require.NoError(t, err)
	require.True(t, f.stock(t).Equal(decimal.NewFromInt(45)))

	// Reduce the quantity from 5 to 3; total drops too
	edit := f.saleInput(3, 150, "CASH")
	edit.ID = inv.ID
	updated, err := f.svc.Update(edit)
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(47)), "stock = %s", f.stock(t))

	linked := f.store.Transactions.FindByRelatedInvoice(inv.ID)
	require.Len(t, linked, 1, "edit must not duplicate the ledger entry")
	assert.True(t, linked[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, inv.CreatedAt, updated.CreatedAt)
}

func TestUpdateAcrossPaymentMethods(t *testing.T) {
	f := newInvoiceFixture(t, true)

	// Cash sale first, then re-settled on credit
	inv, err := f.svc.Create(f.saleInput(5, 250, "CASH"))
	require.NoError(t, err)

	edit := f.saleInput(5, 250, "CREDIT")
	edit.ID = inv.ID
	_, err = f.svc.Update(edit)
	require.NoError(t, err)

	assert.Empty(t, f.store.Transactions.FindByRelatedInvoice(inv.ID))
	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(250)),
		"balance = %s", f.customerBalance(t))
	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(45)))
}

func TestInsufficientStockRejectsWholeInvoice(t *testing.T) {
	f := newInvoiceFixture(t, false)

	// Drop stock to 5, then ask for 6
	product, err := f.store.Products.FindByID(f.product.ID)
	require.NoError(t, err)
	product.AdjustStock(f.locationID, decimal.NewFromInt(-45))
	require.NoError(t, f.store.Products.Save(product))

	_, err = f.svc.Create(f.saleInput(6, 300, "CASH"))
	require.ErrorIs(t, err, shared.ErrInsufficientStock)

	// Nothing was touched
	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(5)), "stock = %s", f.stock(t))
	assert.Empty(t, f.store.Invoices.FindAll())
	assert.Empty(t, f.store.Transactions.FindAll())
}

func TestNegativeTotalRejectsBeforeAnyMutation(t *testing.T) {
	f := newInvoiceFixture(t, true)

	input := f.saleInput(5, 250, "CASH")
	input.Total = decimal.NewFromInt(-250)

	_, err := f.svc.Create(input)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)

	// Nothing was touched
	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(50)), "stock = %s", f.stock(t))
	assert.Empty(t, f.store.Invoices.FindAll())
	assert.Empty(t, f.store.Transactions.FindAll())
}

func TestUpdateWithNegativeTotalLeavesInvoiceApplied(t *testing.T) {
	f := newInvoiceFixture(t, true)

	inv, err := f.svc.Create(f.saleInput(5, 250, "CASH"))
	require.NoError(t, err)

	bad := f.saleInput(3, 150, "CASH")
	bad.ID = inv.ID
	bad.Total = decimal.NewFromInt(-150)

	_, err = f.svc.Update(bad)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)

	// The stored invoice and its effects are intact
	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(45)), "stock = %s", f.stock(t))
	stored, err := f.store.Invoices.FindByID(inv.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(decimal.NewFromInt(250)))
	assert.Len(t, f.store.Transactions.FindByRelatedInvoice(inv.ID), 1)
}

func TestNegativeStockAllowedWhenConfigured(t *testing.T) {
	f := newInvoiceFixture(t, true)

	_, err := f.svc.Create(f.saleInput(60, 3000, "CASH"))
	require.NoError(t, err)
	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(-10)), "stock = %s", f.stock(t))
}

func TestSaleThenPartialReturnRoundTrip(t *testing.T) {
	f := newInvoiceFixture(t, true)

	sale, err := f.svc.Create(f.saleInput(5, 250, "CASH"))
	require.NoError(t, err)
	require.True(t, f.stock(t).Equal(decimal.NewFromInt(45)))

	ret, err := f.svc.Create(InvoiceInput{
		Type:      "SALE_RETURN",
		PartnerID: f.customer.ID,
		Items: []InvoiceItemInput{{
			ProductID:        f.product.ID,
			Quantity:         decimal.NewFromInt(5),
			ReturnedQuantity: decimal.NewFromInt(5),
		}},
		Total:           decimal.NewFromInt(250),
		PaymentMethod:   "CASH",
		ParentInvoiceID: sale.ID,
	})
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(50)), "stock = %s", f.stock(t))

	// The refund paid out is its own ledger entry
	linked := f.store.Transactions.FindByRelatedInvoice(ret.ID)
	require.Len(t, linked, 1)
	assert.Equal(t, finance.TransactionTypeExpense, linked[0].Type)
	assert.Equal(t, finance.CategorySalesReturn, linked[0].Category)
}

func TestReturnedQuantityDrivesStockOverLineQuantity(t *testing.T) {
	f := newInvoiceFixture(t, true)

	// Line quantity reflects the original sale; only 2 of 5 come back
	_, err := f.svc.Create(InvoiceInput{
		Type: "SALE_RETURN",
		Items: []InvoiceItemInput{{
			ProductID:        f.product.ID,
			Quantity:         decimal.NewFromInt(5),
			ReturnedQuantity: decimal.NewFromInt(2),
		}},
		Total:         decimal.NewFromInt(100),
		PaymentMethod: "CASH",
	})
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(52)), "stock = %s", f.stock(t))
}

func TestCreditSaleReturnActsAsCreditNote(t *testing.T) {
	f := newInvoiceFixture(t, true)

	sale, err := f.svc.Create(f.saleInput(5, 300, "CREDIT"))
	require.NoError(t, err)
	require.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(300)))

	ret, err := f.svc.Create(InvoiceInput{
		Type:      "SALE_RETURN",
		PartnerID: f.customer.ID,
		Items: []InvoiceItemInput{{
			ProductID:        f.product.ID,
			Quantity:         decimal.NewFromInt(5),
			ReturnedQuantity: decimal.NewFromInt(5),
		}},
		Total:           decimal.NewFromInt(300),
		PaymentMethod:   "CREDIT",
		ParentInvoiceID: sale.ID,
	})
	require.NoError(t, err)

	// The credit note cancels the original debt, with no ledger entry
	assert.True(t, f.customerBalance(t).IsZero(), "balance = %s", f.customerBalance(t))
	assert.Empty(t, f.store.Transactions.FindAll())

	// Deleting the credit note restores the debt
	require.NoError(t, f.svc.Delete(ret.ID))
	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(300)),
		"balance = %s", f.customerBalance(t))
}

func TestCreditPurchaseReturnReducesSupplierDebt(t *testing.T) {
	f := newInvoiceFixture(t, true)

	supplier, err := f.store.Suppliers.FindByID(f.supplier.ID)
	require.NoError(t, err)
	supplier.AdjustBalance(decimal.NewFromInt(800))
	require.NoError(t, f.store.Suppliers.Save(supplier))

	_, err = f.svc.Create(InvoiceInput{
		Type:      "PURCHASE_RETURN",
		PartnerID: f.supplier.ID,
		Items: []InvoiceItemInput{{
			ProductID:        f.product.ID,
			Quantity:         decimal.NewFromInt(10),
			ReturnedQuantity: decimal.NewFromInt(10),
		}},
		Total:         decimal.NewFromInt(400),
		PaymentMethod: "CREDIT",
	})
	require.NoError(t, err)

	assert.True(t, f.supplierBalance(t).Equal(decimal.NewFromInt(400)),
		"balance = %s", f.supplierBalance(t))
	// Goods went back to the supplier
	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(40)), "stock = %s", f.stock(t))
}

func TestInvoiceWithoutLocationFallsBackToDefault(t *testing.T) {
	f := newInvoiceFixture(t, true)

	input := f.saleInput(5, 250, "CASH")
	input.LocationID = uuid.Nil
	_, err := f.svc.Create(input)
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(45)))
}

func TestInvoiceAtExplicitLocation(t *testing.T) {
	f := newInvoiceFixture(t, true)

	storeFront := uuid.New()
	product, err := f.store.Products.FindByID(f.product.ID)
	require.NoError(t, err)
	product.AdjustStock(storeFront, decimal.NewFromInt(20))
	require.NoError(t, f.store.Products.Save(product))

	input := f.saleInput(5, 250, "CASH")
	input.LocationID = storeFront
	_, err = f.svc.Create(input)
	require.NoError(t, err)

	product, err = f.store.Products.FindByID(f.product.ID)
	require.NoError(t, err)
	assert.True(t, product.StockAt(storeFront).Equal(decimal.NewFromInt(15)))
	assert.True(t, product.StockAt(f.locationID).Equal(decimal.NewFromInt(50)),
		"default location must be untouched")
}

func TestUnknownItemsAreSkippedNotFatal(t *testing.T) {
	f := newInvoiceFixture(t, true)

	input := f.saleInput(5, 250, "CASH")
	input.Items = append(input.Items, InvoiceItemInput{
		ProductID: uuid.New(),
		Quantity:  decimal.NewFromInt(3),
	})
	_, err := f.svc.Create(input)
	require.NoError(t, err)

	assert.True(t, f.stock(t).Equal(decimal.NewFromInt(45)))
}

func TestCreateRejectsInvalidType(t *testing.T) {
	f := newInvoiceFixture(t, true)

	input := f.saleInput(5, 250, "CASH")
	input.Type = "QUOTE"
	_, err := f.svc.Create(input)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TYPE", domainErr.Code)
}

func TestListByType(t *testing.T) {
	f := newInvoiceFixture(t, true)

	_, err := f.svc.Create(f.saleInput(1, 50, "CASH"))
	require.NoError(t, err)
	_, err = f.svc.Create(f.saleInput(2, 100, "CASH"))
	require.NoError(t, err)

	assert.Len(t, f.svc.ListByType(billing.InvoiceTypeSale), 2)
	assert.Empty(t, f.svc.ListByType(billing.InvoiceTypePurchase))
	assert.Len(t, f.svc.List(), 2)
}
