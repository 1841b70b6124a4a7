package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/shared"
)

// Product represents a sellable catalog item. It is the aggregate root for
// stock operations: quantity on hand is tracked per location in Stocks and
// the aggregate quantity is always derived from it, never stored separately.
type Product struct {
	shared.BaseEntity
	Code          string                        `json:"code"`
	Barcode       string                        `json:"barcode"`
	Name          string                        `json:"name"`
	CategoryID    uuid.UUID                     `json:"categoryId"`
	BrandID       uuid.UUID                     `json:"brandId"`
	UnitID        uuid.UUID                     `json:"unitId"`
	SalesPrice    decimal.Decimal               `json:"salesPrice"`
	PurchasePrice decimal.Decimal               `json:"purchasePrice"`
	VATRate       decimal.Decimal               `json:"vatRate"`
	VATIncluded   bool                          `json:"vatIncluded"`
	ImageURL      string                        `json:"imageUrl"`
	Stocks        map[uuid.UUID]decimal.Decimal `json:"stocks"`
}

// NewProduct creates a new product with empty per-location stock
func NewProduct(code, name string) (*Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Code:          strings.ToUpper(code),
		Name:          name,
		SalesPrice:    decimal.Zero,
		PurchasePrice: decimal.Zero,
		VATRate:       decimal.Zero,
		Stocks:        make(map[uuid.UUID]decimal.Decimal),
	}, nil
}

// TotalStock returns the aggregate quantity across all locations
func (p *Product) TotalStock() decimal.Decimal {
	total := decimal.Zero
	for _, qty := range p.Stocks {
		total = total.Add(qty)
	}
	return total
}

// StockAt returns the quantity held at the given location
func (p *Product) StockAt(locationID uuid.UUID) decimal.Decimal {
	if qty, ok := p.Stocks[locationID]; ok {
		return qty
	}
	return decimal.Zero
}

// AdjustStock applies a signed quantity delta at the given location.
// Negative results are permitted here; the allow-negative-stock policy is
// enforced by the calling service before any effect is applied.
func (p *Product) AdjustStock(locationID uuid.UUID, delta decimal.Decimal) {
	if p.Stocks == nil {
		p.Stocks = make(map[uuid.UUID]decimal.Decimal)
	}
	p.Stocks[locationID] = p.StockAt(locationID).Add(delta)
	p.Touch()
}

// CanFulfill reports whether the aggregate stock covers the requested quantity
func (p *Product) CanFulfill(quantity decimal.Decimal) bool {
	return p.TotalStock().GreaterThanOrEqual(quantity)
}

// CanFulfillAt reports whether stock at one location covers the requested quantity
func (p *Product) CanFulfillAt(locationID uuid.UUID, quantity decimal.Decimal) bool {
	return p.StockAt(locationID).GreaterThanOrEqual(quantity)
}

// SetPrices updates sales and purchase prices
func (p *Product) SetPrices(salesPrice, purchasePrice decimal.Decimal) error {
	if salesPrice.IsNegative() || purchasePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	p.SalesPrice = salesPrice
	p.PurchasePrice = purchasePrice
	p.Touch()
	return nil
}

// SetVAT updates the VAT rate and inclusion flag
func (p *Product) SetVAT(rate decimal.Decimal, included bool) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_VAT", "VAT rate cannot be negative")
	}
	p.VATRate = rate
	p.VATIncluded = included
	p.Touch()
	return nil
}
