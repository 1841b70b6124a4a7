package memory

import (
	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/partner"
	"github.com/vinpos/backend/internal/domain/shared"
)

// CustomerRepository is the in-memory partner.CustomerRepository
type CustomerRepository struct {
	customers *collection[partner.Customer]
}

// NewCustomerRepository creates an empty customer repository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: newCollection(shallow[partner.Customer])}
}

// FindByID finds a customer by its ID
func (r *CustomerRepository) FindByID(id uuid.UUID) (*partner.Customer, error) {
	return r.customers.get(id)
}

// FindAll returns all customers
func (r *CustomerRepository) FindAll() []partner.Customer {
	return r.customers.all()
}

// Save creates or replaces a customer
func (r *CustomerRepository) Save(customer *partner.Customer) error {
	if customer == nil || customer.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.customers.put(customer.ID, customer)
	return nil
}

// Remove deletes a customer by ID
func (r *CustomerRepository) Remove(id uuid.UUID) error {
	return r.customers.remove(id)
}

// SupplierRepository is the in-memory partner.SupplierRepository
type SupplierRepository struct {
	suppliers *collection[partner.Supplier]
}

// NewSupplierRepository creates an empty supplier repository
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: newCollection(shallow[partner.Supplier])}
}

// FindByID finds a supplier by its ID
func (r *SupplierRepository) FindByID(id uuid.UUID) (*partner.Supplier, error) {
	return r.suppliers.get(id)
}

// FindAll returns all suppliers
func (r *SupplierRepository) FindAll() []partner.Supplier {
	return r.suppliers.all()
}

// Save creates or replaces a supplier
func (r *SupplierRepository) Save(supplier *partner.Supplier) error {
	if supplier == nil || supplier.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.suppliers.put(supplier.ID, supplier)
	return nil
}

// Remove deletes a supplier by ID
func (r *SupplierRepository) Remove(id uuid.UUID) error {
	return r.suppliers.remove(id)
}
