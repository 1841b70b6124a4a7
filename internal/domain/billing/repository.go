package billing

import (
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice storage
type InvoiceRepository interface {
	FindByID(id uuid.UUID) (*Invoice, error)
	FindAll() []Invoice
	FindByType(invoiceType InvoiceType) []Invoice
	FindByPartner(partnerID uuid.UUID) []Invoice
	Save(invoice *Invoice) error
	Remove(id uuid.UUID) error
}
