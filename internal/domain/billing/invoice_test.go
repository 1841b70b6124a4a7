package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(qty int64) []InvoiceItem {
	return []InvoiceItem{{ProductID: uuid.New(), Quantity: decimal.NewFromInt(qty)}}
}

func TestNewInvoiceAssignsIDAndDate(t *testing.T) {
	inv, err := NewInvoice(uuid.Nil, InvoiceTypeSale, time.Time{}, items(1))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.False(t, inv.Date.IsZero())
}

func TestNewInvoiceKeepsClientSuppliedID(t *testing.T) {
	id := uuid.New()
	inv, err := NewInvoice(id, InvoiceTypePurchase, time.Time{}, items(1))
	require.NoError(t, err)
	assert.Equal(t, id, inv.ID)
}

func TestNewInvoiceRejectsUnknownType(t *testing.T) {
	_, err := NewInvoice(uuid.Nil, InvoiceType("QUOTE"), time.Time{}, items(1))
	assert.Error(t, err)
}

func TestNewInvoiceRejectsEmptyItems(t *testing.T) {
	_, err := NewInvoice(uuid.Nil, InvoiceTypeSale, time.Time{}, nil)
	assert.Error(t, err)
}

func TestEffectiveQuantityPrefersReturnedQuantity(t *testing.T) {
	item := InvoiceItem{
		Quantity:         decimal.NewFromInt(5),
		ReturnedQuantity: decimal.NewFromInt(2),
	}
	assert.True(t, item.EffectiveQuantity().Equal(decimal.NewFromInt(2)))

	item.ReturnedQuantity = decimal.Zero
	assert.True(t, item.EffectiveQuantity().Equal(decimal.NewFromInt(5)))
}

func TestStockDirection(t *testing.T) {
	minusOne := decimal.NewFromInt(-1)
	plusOne := decimal.NewFromInt(1)

	assert.True(t, InvoiceTypeSale.StockDirection().Equal(minusOne))
	assert.True(t, InvoiceTypePurchaseReturn.StockDirection().Equal(minusOne))
	assert.True(t, InvoiceTypePurchase.StockDirection().Equal(plusOne))
	assert.True(t, InvoiceTypeSaleReturn.StockDirection().Equal(plusOne))
}

func TestDepletesStock(t *testing.T) {
	assert.True(t, InvoiceTypeSale.DepletesStock())
	assert.True(t, InvoiceTypePurchaseReturn.DepletesStock())
	assert.False(t, InvoiceTypePurchase.DepletesStock())
	assert.False(t, InvoiceTypeSaleReturn.DepletesStock())
}

func TestIsReturnAndIsCredit(t *testing.T) {
	inv, err := NewInvoice(uuid.Nil, InvoiceTypeSaleReturn, time.Time{}, items(1))
	require.NoError(t, err)
	assert.True(t, inv.IsReturn())
	assert.False(t, inv.IsCredit())

	inv.PaymentMethod = PaymentMethodCredit
	assert.True(t, inv.IsCredit())
}
