package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/finance"
	"github.com/vinpos/backend/internal/domain/shared"
)

func TestProductRepositoryClonesOnReadAndWrite(t *testing.T) {
	repo := NewProductRepository()

	product, err := catalog.NewProduct("P001", "Widget")
	require.NoError(t, err)
	loc := uuid.New()
	product.AdjustStock(loc, decimal.NewFromInt(10))
	require.NoError(t, repo.Save(product))

	// Mutating the saved pointer must not leak into the store
	product.AdjustStock(loc, decimal.NewFromInt(99))
	stored, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.True(t, stored.StockAt(loc).Equal(decimal.NewFromInt(10)))

	// Mutating a read result must not leak either
	stored.AdjustStock(loc, decimal.NewFromInt(-5))
	again, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.True(t, again.StockAt(loc).Equal(decimal.NewFromInt(10)))
}

func TestProductRepositoryLookups(t *testing.T) {
	repo := NewProductRepository()

	p1, err := catalog.NewProduct("P001", "Widget")
	require.NoError(t, err)
	p1.Barcode = "123456"
	require.NoError(t, repo.Save(p1))

	byCode, err := repo.FindByCode("P001")
	require.NoError(t, err)
	assert.Equal(t, p1.ID, byCode.ID)

	byBarcode, err := repo.FindByBarcode("123456")
	require.NoError(t, err)
	assert.Equal(t, p1.ID, byBarcode.ID)

	_, err = repo.FindByCode("NOPE")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	repo := NewProductRepository()

	var ids []uuid.UUID
	for _, code := range []string{"A1", "B2", "C3"} {
		product, err := catalog.NewProduct(code, "Item "+code)
		require.NoError(t, err)
		require.NoError(t, repo.Save(product))
		ids = append(ids, product.ID)
	}

	all := repo.FindAll()
	require.Len(t, all, 3)
	for i, product := range all {
		assert.Equal(t, ids[i], product.ID)
	}

	// Re-saving keeps the original position
	first, err := repo.FindByID(ids[0])
	require.NoError(t, err)
	first.Name = "Renamed"
	require.NoError(t, repo.Save(first))
	assert.Equal(t, ids[0], repo.FindAll()[0].ID)
}

func TestRemoveMissingReturnsNotFound(t *testing.T) {
	repo := NewProductRepository()
	assert.ErrorIs(t, repo.Remove(uuid.New()), shared.ErrNotFound)
}

func TestTransactionRepositoryRemoveByRelatedInvoice(t *testing.T) {
	repo := NewTransactionRepository()
	invoiceID := uuid.New()

	linked, err := finance.NewTransaction(finance.TransactionTypeIncome, decimal.NewFromInt(100), finance.TransactionSourceBank)
	require.NoError(t, err)
	linked.RelatedInvoiceID = invoiceID
	require.NoError(t, repo.Save(linked))

	standalone, err := finance.NewTransaction(finance.TransactionTypeExpense, decimal.NewFromInt(50), finance.TransactionSourceBank)
	require.NoError(t, err)
	require.NoError(t, repo.Save(standalone))

	assert.Len(t, repo.FindByRelatedInvoice(invoiceID), 1)
	assert.Equal(t, 1, repo.RemoveByRelatedInvoice(invoiceID))
	assert.Empty(t, repo.FindByRelatedInvoice(invoiceID))

	// The standalone entry survives
	require.Len(t, repo.FindAll(), 1)
	assert.Equal(t, standalone.ID, repo.FindAll()[0].ID)

	// Removing again is a zero-count no-op
	assert.Zero(t, repo.RemoveByRelatedInvoice(invoiceID))
}

func TestTransactionRepositoryNilInvoiceLinkMatchesNothing(t *testing.T) {
	repo := NewTransactionRepository()

	// Manual entries carry a nil link
	manual, err := finance.NewTransaction(finance.TransactionTypeIncome, decimal.NewFromInt(100), finance.TransactionSourceBank)
	require.NoError(t, err)
	require.NoError(t, repo.Save(manual))

	assert.Empty(t, repo.FindByRelatedInvoice(uuid.Nil))
	assert.Zero(t, repo.RemoveByRelatedInvoice(uuid.Nil))
	assert.Len(t, repo.FindAll(), 1)
}

func TestSettingsRepositoryRoundTrip(t *testing.T) {
	store := NewStore(shared.Settings{Currency: "AZN", AllowNegativeStock: true})

	current := store.Settings.Get()
	assert.Equal(t, "AZN", current.Currency)

	current.Currency = "USD"
	current.AllowNegativeStock = false
	store.Settings.Update(current)

	assert.Equal(t, "USD", store.Settings.Get().Currency)
	assert.False(t, store.Settings.Get().AllowNegativeStock)
}

func TestSeedProducesConsistentStore(t *testing.T) {
	store := NewStore(shared.Settings{Currency: "AZN"})
	require.NoError(t, Seed(store))

	settings := store.Settings.Get()
	assert.NotEqual(t, uuid.Nil, settings.DefaultLocationID, "main warehouse must be pinned")
	assert.NotEqual(t, uuid.Nil, settings.DefaultBankID)

	// The pinned location really exists
	_, err := store.Locations.FindByID(settings.DefaultLocationID)
	assert.NoError(t, err)

	assert.NotEmpty(t, store.Products.FindAll())
	assert.NotEmpty(t, store.Customers.FindAll())
	assert.NotEmpty(t, store.Suppliers.FindAll())
	assert.NotEmpty(t, store.Accounts.FindAll())

	// Seeded products keep stock at real locations only
	for _, product := range store.Products.FindAll() {
		for locationID := range product.Stocks {
			_, err := store.Locations.FindByID(locationID)
			assert.NoError(t, err, "product %s references unknown location", product.Code)
		}
	}

	// The demo admin can log in
	admin, err := store.Users.FindByUsername("admin")
	require.NoError(t, err)
	assert.True(t, admin.CheckPassword("1234"))
}
