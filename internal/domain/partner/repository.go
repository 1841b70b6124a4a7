package partner

import (
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer storage
type CustomerRepository interface {
	FindByID(id uuid.UUID) (*Customer, error)
	FindAll() []Customer
	Save(customer *Customer) error
	Remove(id uuid.UUID) error
}

// SupplierRepository defines the interface for supplier storage
type SupplierRepository interface {
	FindByID(id uuid.UUID) (*Supplier, error)
	FindAll() []Supplier
	Save(supplier *Supplier) error
	Remove(id uuid.UUID) error
}
