package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/shared"
)

// InvoiceType represents the commercial direction of an invoice
type InvoiceType string

const (
	InvoiceTypeSale           InvoiceType = "SALE"
	InvoiceTypePurchase       InvoiceType = "PURCHASE"
	InvoiceTypeSaleReturn     InvoiceType = "SALE_RETURN"
	InvoiceTypePurchaseReturn InvoiceType = "PURCHASE_RETURN"
)

// PaymentMethod represents how an invoice is settled
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodCredit PaymentMethod = "CREDIT" // Deferred; adjusts the partner balance instead of cash/bank
)

// InvoiceItem is one line of an invoice. ProductName is a snapshot taken at
// invoicing time and is never re-derived from the current catalog.
type InvoiceItem struct {
	ProductID        uuid.UUID       `json:"productId"`
	ProductName      string          `json:"productName"`
	Quantity         decimal.Decimal `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Total            decimal.Decimal `json:"total"`
	ReturnedQuantity decimal.Decimal `json:"returnedQuantity"`
}

// EffectiveQuantity returns the quantity the stock engine must move:
// the returned quantity when one is recorded, otherwise the line quantity.
func (i InvoiceItem) EffectiveQuantity() decimal.Decimal {
	if i.ReturnedQuantity.IsPositive() {
		return i.ReturnedQuantity
	}
	return i.Quantity
}

// Invoice is a document representing one commercial transaction. Identity is
// immutable; content is replaced wholesale on edit after its prior effects
// have been reversed.
type Invoice struct {
	shared.BaseEntity
	Type            InvoiceType     `json:"type"`
	Date            time.Time       `json:"date"`
	PartnerID       uuid.UUID       `json:"partnerId"`
	PartnerName     string          `json:"partnerName"` // Snapshot, kept for the audit trail
	LocationID      uuid.UUID       `json:"locationId"`
	Items           []InvoiceItem   `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	BankID          uuid.UUID       `json:"bankId"`
	ParentInvoiceID uuid.UUID       `json:"parentInvoiceId"` // Informational link from a return to its original
	CreatedBy       string          `json:"createdBy"`       // Acting username
}

// NewInvoice creates an invoice document
func NewInvoice(id uuid.UUID, invoiceType InvoiceType, date time.Time, items []InvoiceItem) (*Invoice, error) {
	switch invoiceType {
	case InvoiceTypeSale, InvoiceTypePurchase, InvoiceTypeSaleReturn, InvoiceTypePurchaseReturn:
	default:
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown invoice type")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Invoice must contain at least one item")
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Invoice{
		BaseEntity: shared.NewBaseEntityWithID(id),
		Type:       invoiceType,
		Date:       date,
		Items:      items,
	}, nil
}

// IsReturn reports whether this invoice is a return of either direction
func (inv *Invoice) IsReturn() bool {
	return inv.Type == InvoiceTypeSaleReturn || inv.Type == InvoiceTypePurchaseReturn
}

// IsCredit reports whether the invoice is settled on credit
func (inv *Invoice) IsCredit() bool {
	return inv.PaymentMethod == PaymentMethodCredit
}

// StockDirection returns the forward per-unit stock sign for this invoice
// type: -1 when goods leave the business (sale, return to supplier), +1 when
// goods enter it (purchase, return from customer).
func (t InvoiceType) StockDirection() decimal.Decimal {
	switch t {
	case InvoiceTypeSale, InvoiceTypePurchaseReturn:
		return decimal.NewFromInt(-1)
	default:
		return decimal.NewFromInt(1)
	}
}

// DepletesStock reports whether a forward application of this invoice type
// reduces stock and therefore needs a sufficiency check before commit.
func (t InvoiceType) DepletesStock() bool {
	return t == InvoiceTypeSale || t == InvoiceTypePurchaseReturn
}
