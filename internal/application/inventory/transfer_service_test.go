package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/shared"
	"github.com/vinpos/backend/internal/infrastructure/memory"
)

type transferFixture struct {
	svc       *TransferService
	store     *memory.Store
	product   *catalog.Product
	warehouse uuid.UUID
	shop      uuid.UUID
}

func newTransferFixture(t *testing.T, allowNegativeStock bool) *transferFixture {
	t.Helper()

	warehouse := uuid.New()
	shop := uuid.New()
	store := memory.NewStore(shared.Settings{
		AllowNegativeStock: allowNegativeStock,
		DefaultLocationID:  warehouse,
	})

	product, err := catalog.NewProduct("P001", "Test Product")
	require.NoError(t, err)
	product.AdjustStock(warehouse, decimal.NewFromInt(30))
	require.NoError(t, store.Products.Save(product))

	svc := NewTransferService(store.Transfers, store.Products, store.Settings, nil)
	return &transferFixture{svc: svc, store: store, product: product, warehouse: warehouse, shop: shop}
}

func (f *transferFixture) reload(t *testing.T) *catalog.Product {
	t.Helper()
	product, err := f.store.Products.FindByID(f.product.ID)
	require.NoError(t, err)
	return product
}

func (f *transferFixture) input(qty int64) TransferInput {
	return TransferInput{
		SourceLocationID: f.warehouse,
		TargetLocationID: f.shop,
		Items: []TransferItemInput{{
			ProductID: f.product.ID,
			Quantity:  decimal.NewFromInt(qty),
		}},
	}
}

func TestTransferMovesStockAndConservesAggregate(t *testing.T) {
	f := newTransferFixture(t, false)

	_, err := f.svc.Create(f.input(10))
	require.NoError(t, err)

	product := f.reload(t)
	assert.True(t, product.StockAt(f.warehouse).Equal(decimal.NewFromInt(20)))
	assert.True(t, product.StockAt(f.shop).Equal(decimal.NewFromInt(10)))
	assert.True(t, product.TotalStock().Equal(decimal.NewFromInt(30)),
		"aggregate must be conserved")
}

func TestTransferRejectsShortSourceAllOrNothing(t *testing.T) {
	f := newTransferFixture(t, false)

	second, err := catalog.NewProduct("P002", "Second Product")
	require.NoError(t, err)
	second.AdjustStock(f.warehouse, decimal.NewFromInt(2))
	require.NoError(t, f.store.Products.Save(second))

	input := f.input(10)
	input.Items = append(input.Items, TransferItemInput{
		ProductID: second.ID,
		Quantity:  decimal.NewFromInt(5), // only 2 on hand
	})
	_, err = f.svc.Create(input)
	require.ErrorIs(t, err, shared.ErrInsufficientStock)

	// Neither line moved
	product := f.reload(t)
	assert.True(t, product.StockAt(f.warehouse).Equal(decimal.NewFromInt(30)))
	assert.True(t, product.StockAt(f.shop).IsZero())
	assert.Empty(t, f.store.Transfers.FindAll())
}

func TestTransferAllowsNegativeSourceWhenConfigured(t *testing.T) {
	f := newTransferFixture(t, true)

	_, err := f.svc.Create(f.input(40))
	require.NoError(t, err)

	product := f.reload(t)
	assert.True(t, product.StockAt(f.warehouse).Equal(decimal.NewFromInt(-10)))
	assert.True(t, product.StockAt(f.shop).Equal(decimal.NewFromInt(40)))
}

func TestTransferUpdateNetsAgainstPriorMove(t *testing.T) {
	f := newTransferFixture(t, false)

	doc, err := f.svc.Create(f.input(10))
	require.NoError(t, err)

	edit := f.input(4)
	edit.ID = doc.ID
	updated, err := f.svc.Update(edit)
	require.NoError(t, err)

	product := f.reload(t)
	assert.True(t, product.StockAt(f.warehouse).Equal(decimal.NewFromInt(26)))
	assert.True(t, product.StockAt(f.shop).Equal(decimal.NewFromInt(4)))
	assert.Equal(t, doc.CreatedAt, updated.CreatedAt)
}

func TestTransferUpdateValidationFailureRestoresOldMoves(t *testing.T) {
	f := newTransferFixture(t, false)

	doc, err := f.svc.Create(f.input(10))
	require.NoError(t, err)

	// 35 exceeds what the warehouse holds even with the old move unwound
	edit := f.input(35)
	edit.ID = doc.ID
	_, err = f.svc.Update(edit)
	require.ErrorIs(t, err, shared.ErrInsufficientStock)

	product := f.reload(t)
	assert.True(t, product.StockAt(f.warehouse).Equal(decimal.NewFromInt(20)),
		"original move must still stand")
	assert.True(t, product.StockAt(f.shop).Equal(decimal.NewFromInt(10)))

	stored, err := f.store.Transfers.FindByID(doc.ID)
	require.NoError(t, err)
	assert.True(t, stored.Items[0].Quantity.Equal(decimal.NewFromInt(10)))
}

func TestTransferDeleteMovesStockBack(t *testing.T) {
	f := newTransferFixture(t, false)

	doc, err := f.svc.Create(f.input(10))
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(doc.ID))

	product := f.reload(t)
	assert.True(t, product.StockAt(f.warehouse).Equal(decimal.NewFromInt(30)))
	assert.True(t, product.StockAt(f.shop).IsZero())
	assert.Empty(t, f.store.Transfers.FindAll())
}

func TestTransferDeleteMissingIsNoOp(t *testing.T) {
	f := newTransferFixture(t, false)
	assert.NoError(t, f.svc.Delete(uuid.New()))
}

func TestTransferRejectsSameSourceAndTarget(t *testing.T) {
	f := newTransferFixture(t, false)

	input := f.input(5)
	input.TargetLocationID = f.warehouse
	_, err := f.svc.Create(input)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_LOCATION", domainErr.Code)
}

func TestTransferRejectsNonPositiveQuantity(t *testing.T) {
	f := newTransferFixture(t, false)

	input := f.input(5)
	input.Items[0].Quantity = decimal.Zero
	_, err := f.svc.Create(input)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
}
