package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinpos/backend/internal/domain/finance"
	"github.com/vinpos/backend/internal/domain/partner"
	"github.com/vinpos/backend/internal/domain/shared"
	"github.com/vinpos/backend/internal/infrastructure/memory"
)

type ledgerFixture struct {
	svc      *TransactionService
	store    *memory.Store
	customer *partner.Customer
	supplier *partner.Supplier
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	store := memory.NewStore(shared.Settings{Currency: "AZN"})

	customer, err := partner.NewCustomer("Acme Retail", partner.CustomerTypeCorporate)
	require.NoError(t, err)
	customer.AdjustBalance(decimal.NewFromInt(500)) // owes the business
	require.NoError(t, store.Customers.Save(customer))

	supplier, err := partner.NewSupplier("Gilan Distribution")
	require.NoError(t, err)
	supplier.AdjustBalance(decimal.NewFromInt(800)) // business owes
	require.NoError(t, store.Suppliers.Save(supplier))

	svc := NewTransactionService(store.Transactions, store.Customers, store.Suppliers, nil)
	return &ledgerFixture{svc: svc, store: store, customer: customer, supplier: supplier}
}

func (f *ledgerFixture) customerBalance(t *testing.T) decimal.Decimal {
	t.Helper()
	customer, err := f.store.Customers.FindByID(f.customer.ID)
	require.NoError(t, err)
	return customer.Balance
}

func (f *ledgerFixture) supplierBalance(t *testing.T) decimal.Decimal {
	t.Helper()
	supplier, err := f.store.Suppliers.FindByID(f.supplier.ID)
	require.NoError(t, err)
	return supplier.Balance
}

func TestIncomeFromCustomerReducesDebt(t *testing.T) {
	f := newLedgerFixture(t)

	// Customer pays 200 of the 500 they owe
	_, err := f.svc.Add(TransactionInput{
		Type:      "INCOME",
		Amount:    decimal.NewFromInt(200),
		Source:    "CASH_REGISTER",
		PartnerID: f.customer.ID,
	})
	require.NoError(t, err)

	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(300)),
		"balance = %s", f.customerBalance(t))
}

func TestExpenseToCustomerRaisesDebt(t *testing.T) {
	f := newLedgerFixture(t)

	// Refund paid out to the customer
	_, err := f.svc.Add(TransactionInput{
		Type:      "EXPENSE",
		Amount:    decimal.NewFromInt(100),
		Source:    "CASH_REGISTER",
		PartnerID: f.customer.ID,
	})
	require.NoError(t, err)

	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(600)),
		"balance = %s", f.customerBalance(t))
}

func TestExpenseToSupplierReducesDebt(t *testing.T) {
	f := newLedgerFixture(t)

	// Business pays 300 of the 800 it owes
	_, err := f.svc.Add(TransactionInput{
		Type:      "EXPENSE",
		Amount:    decimal.NewFromInt(300),
		Source:    "BANK",
		PartnerID: f.supplier.ID,
	})
	require.NoError(t, err)

	assert.True(t, f.supplierBalance(t).Equal(decimal.NewFromInt(500)),
		"balance = %s", f.supplierBalance(t))
}

func TestIncomeFromSupplierRaisesDebt(t *testing.T) {
	f := newLedgerFixture(t)

	// Supplier refunds the business
	_, err := f.svc.Add(TransactionInput{
		Type:      "INCOME",
		Amount:    decimal.NewFromInt(150),
		Source:    "BANK",
		PartnerID: f.supplier.ID,
	})
	require.NoError(t, err)

	assert.True(t, f.supplierBalance(t).Equal(decimal.NewFromInt(950)),
		"balance = %s", f.supplierBalance(t))
}

func TestEntryWithoutPartnerHasNoSideEffect(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.Add(TransactionInput{
		Type:     "EXPENSE",
		Category: "Rent",
		Amount:   decimal.NewFromInt(1200),
		Source:   "BANK",
	})
	require.NoError(t, err)

	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(500)))
	assert.True(t, f.supplierBalance(t).Equal(decimal.NewFromInt(800)))
	assert.Len(t, f.svc.List(), 1)
}

func TestUpdateReversesOldSideEffectBeforeApplyingNew(t *testing.T) {
	f := newLedgerFixture(t)

	tx, err := f.svc.Add(TransactionInput{
		Type:      "INCOME",
		Amount:    decimal.NewFromInt(200),
		Source:    "CASH_REGISTER",
		PartnerID: f.customer.ID,
	})
	require.NoError(t, err)
	require.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(300)))

	// Correct the received amount to 50
	_, err = f.svc.Update(TransactionInput{
		ID:        tx.ID,
		Type:      "INCOME",
		Amount:    decimal.NewFromInt(50),
		Source:    "CASH_REGISTER",
		PartnerID: f.customer.ID,
	})
	require.NoError(t, err)

	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(450)),
		"balance = %s", f.customerBalance(t))
	assert.Len(t, f.svc.List(), 1)
}

func TestUpdateCanMoveEntryBetweenPartners(t *testing.T) {
	f := newLedgerFixture(t)

	tx, err := f.svc.Add(TransactionInput{
		Type:      "INCOME",
		Amount:    decimal.NewFromInt(200),
		Source:    "BANK",
		PartnerID: f.customer.ID,
	})
	require.NoError(t, err)

	// Reassign the entry to the supplier
	_, err = f.svc.Update(TransactionInput{
		ID:        tx.ID,
		Type:      "INCOME",
		Amount:    decimal.NewFromInt(200),
		Source:    "BANK",
		PartnerID: f.supplier.ID,
	})
	require.NoError(t, err)

	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(500)),
		"customer side effect must be undone")
	assert.True(t, f.supplierBalance(t).Equal(decimal.NewFromInt(1000)),
		"supplier side effect must be applied")
}

func TestDeleteReversesSideEffect(t *testing.T) {
	f := newLedgerFixture(t)

	tx, err := f.svc.Add(TransactionInput{
		Type:      "INCOME",
		Amount:    decimal.NewFromInt(200),
		Source:    "CASH_REGISTER",
		PartnerID: f.customer.ID,
	})
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(tx.ID))

	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(500)),
		"balance = %s", f.customerBalance(t))
	assert.Empty(t, f.svc.List())
}

func TestDeleteMissingEntryIsNoOp(t *testing.T) {
	f := newLedgerFixture(t)
	assert.NoError(t, f.svc.Delete(uuid.New()))
}

func TestInvoiceLinkedEntryNeverTriggersSideEffect(t *testing.T) {
	f := newLedgerFixture(t)

	// Simulate an entry produced by the invoice engine
	tx, err := finance.NewTransaction(finance.TransactionTypeIncome, decimal.NewFromInt(250), finance.TransactionSourceCashRegister)
	require.NoError(t, err)
	tx.PartnerID = f.customer.ID
	tx.RelatedInvoiceID = uuid.New()
	require.NoError(t, f.store.Transactions.Save(tx))

	require.NoError(t, f.svc.Delete(tx.ID))
	assert.True(t, f.customerBalance(t).Equal(decimal.NewFromInt(500)),
		"linked entries settle through their invoice, not here")
}

func TestAddRejectsNegativeAmount(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.Add(TransactionInput{
		Type:   "EXPENSE",
		Amount: decimal.NewFromInt(-10),
		Source: "BANK",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
}
