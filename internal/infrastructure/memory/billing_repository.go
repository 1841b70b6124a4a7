package memory

import (
	"slices"

	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/billing"
	"github.com/vinpos/backend/internal/domain/shared"
)

func cloneInvoice(inv *billing.Invoice) *billing.Invoice {
	cp := *inv
	cp.Items = slices.Clone(inv.Items)
	return &cp
}

// InvoiceRepository is the in-memory billing.InvoiceRepository
type InvoiceRepository struct {
	invoices *collection[billing.Invoice]
}

// NewInvoiceRepository creates an empty invoice repository
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{invoices: newCollection(cloneInvoice)}
}

// FindByID finds an invoice by its ID
func (r *InvoiceRepository) FindByID(id uuid.UUID) (*billing.Invoice, error) {
	return r.invoices.get(id)
}

// FindAll returns all invoices in insertion order
func (r *InvoiceRepository) FindAll() []billing.Invoice {
	return r.invoices.all()
}

// FindByType returns invoices of one commercial direction
func (r *InvoiceRepository) FindByType(invoiceType billing.InvoiceType) []billing.Invoice {
	return r.invoices.filter(func(inv *billing.Invoice) bool { return inv.Type == invoiceType })
}

// FindByPartner returns invoices referencing the partner
func (r *InvoiceRepository) FindByPartner(partnerID uuid.UUID) []billing.Invoice {
	return r.invoices.filter(func(inv *billing.Invoice) bool { return inv.PartnerID == partnerID })
}

// Save creates or replaces an invoice
func (r *InvoiceRepository) Save(invoice *billing.Invoice) error {
	if invoice == nil || invoice.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.invoices.put(invoice.ID, invoice)
	return nil
}

// Remove deletes an invoice by ID
func (r *InvoiceRepository) Remove(id uuid.UUID) error {
	return r.invoices.remove(id)
}
