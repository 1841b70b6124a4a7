package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/billing"
	"github.com/vinpos/backend/internal/domain/shared"
)

// InvoiceItemInput is one invoice line as submitted by a client
type InvoiceItemInput struct {
	ProductID        uuid.UUID       `json:"productId" binding:"required"`
	ProductName      string          `json:"productName"`
	Quantity         decimal.Decimal `json:"quantity" binding:"required"`
	Price            decimal.Decimal `json:"price"`
	Total            decimal.Decimal `json:"total"`
	ReturnedQuantity decimal.Decimal `json:"returnedQuantity"`
}

// InvoiceInput is the payload for creating or replacing an invoice. The
// client may supply the document id (POS receipts are numbered up front);
// a zero id lets the server assign one.
type InvoiceInput struct {
	ID              uuid.UUID          `json:"id"`
	Type            string             `json:"type" binding:"required,oneof=SALE PURCHASE SALE_RETURN PURCHASE_RETURN"`
	Date            time.Time          `json:"date"`
	PartnerID       uuid.UUID          `json:"partnerId"`
	PartnerName     string             `json:"partnerName"`
	LocationID      uuid.UUID          `json:"locationId"`
	Items           []InvoiceItemInput `json:"items" binding:"required,min=1"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	Discount        decimal.Decimal    `json:"discount"`
	Tax             decimal.Decimal    `json:"tax"`
	Total           decimal.Decimal    `json:"total"`
	PaymentMethod   string             `json:"paymentMethod" binding:"required,oneof=CASH CARD CREDIT"`
	BankID          uuid.UUID          `json:"bankId"`
	ParentInvoiceID uuid.UUID          `json:"parentInvoiceId"`
	CreatedBy       string             `json:"createdBy"`
}

// ToDomain converts the input into an invoice document. Monetary fields are
// rejected here, before the effect engine has mutated anything.
func (in InvoiceInput) ToDomain() (*billing.Invoice, error) {
	if in.Total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice total cannot be negative")
	}

	items := make([]billing.InvoiceItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, billing.InvoiceItem{
			ProductID:        item.ProductID,
			ProductName:      item.ProductName,
			Quantity:         item.Quantity,
			Price:            item.Price,
			Total:            item.Total,
			ReturnedQuantity: item.ReturnedQuantity,
		})
	}

	inv, err := billing.NewInvoice(in.ID, billing.InvoiceType(in.Type), in.Date, items)
	if err != nil {
		return nil, err
	}
	inv.PartnerID = in.PartnerID
	inv.PartnerName = in.PartnerName
	inv.LocationID = in.LocationID
	inv.Subtotal = in.Subtotal
	inv.Discount = in.Discount
	inv.Tax = in.Tax
	inv.Total = in.Total
	inv.PaymentMethod = billing.PaymentMethod(in.PaymentMethod)
	inv.BankID = in.BankID
	inv.ParentInvoiceID = in.ParentInvoiceID
	inv.CreatedBy = in.CreatedBy
	return inv, nil
}
