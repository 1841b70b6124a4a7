package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billingapp "github.com/vinpos/backend/internal/application/billing"
	"github.com/vinpos/backend/internal/domain/catalog"
	"github.com/vinpos/backend/internal/domain/shared"
	"github.com/vinpos/backend/internal/infrastructure/memory"
	"github.com/vinpos/backend/internal/interfaces/http/middleware"
	"github.com/vinpos/backend/internal/interfaces/http/router"
)

func newInvoiceTestServer(t *testing.T) (*gin.Engine, *memory.Store, *catalog.Product, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	locationID := uuid.New()
	store := memory.NewStore(shared.Settings{
		AllowNegativeStock: false,
		DefaultLocationID:  locationID,
	})

	product, err := catalog.NewProduct("P001", "Widget")
	require.NoError(t, err)
	product.AdjustStock(locationID, decimal.NewFromInt(5))
	require.NoError(t, store.Products.Save(product))

	svc := billingapp.NewInvoiceService(
		store.Invoices, store.Products, store.Customers, store.Suppliers,
		store.Transactions, store.Settings, nil,
	)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewInvoiceHandler(svc))
	r.Setup()

	return engine, store, product, locationID
}

func invoiceBody(productID uuid.UUID, qty int) string {
	return fmt.Sprintf(`{
		"type": "SALE",
		"paymentMethod": "CASH",
		"total": "%d",
		"items": [{"productId": %q, "quantity": "%d"}]
	}`, qty*50, productID, qty)
}

func TestInvoiceEndpointCreate(t *testing.T) {
	engine, store, product, locationID := newInvoiceTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(invoiceBody(product.ID, 2)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	stored, err := store.Products.FindByID(product.ID)
	require.NoError(t, err)
	assert.True(t, stored.StockAt(locationID).Equal(decimal.NewFromInt(3)))
}

func TestInvoiceEndpointInsufficientStockIs422(t *testing.T) {
	engine, _, product, _ := newInvoiceTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(invoiceBody(product.ID, 6)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INSUFFICIENT_STOCK")
}

func TestInvoiceEndpointValidation(t *testing.T) {
	engine, _, _, _ := newInvoiceTestServer(t)

	// Missing items and payment method
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(`{"type":"SALE"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceEndpointGetMissingIs404(t *testing.T) {
	engine, _, _, _ := newInvoiceTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
}

func TestInvoiceEndpointDelete(t *testing.T) {
	engine, store, product, locationID := newInvoiceTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(invoiceBody(product.ID, 2)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	invoices := store.Invoices.FindAll()
	require.Len(t, invoices, 1)

	del := httptest.NewRequest(http.MethodDelete, "/api/v1/invoices/"+invoices[0].ID.String(), nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, del)

	assert.Equal(t, http.StatusNoContent, w.Code)
	stored, err := store.Products.FindByID(product.ID)
	require.NoError(t, err)
	assert.True(t, stored.StockAt(locationID).Equal(decimal.NewFromInt(5)))
}
