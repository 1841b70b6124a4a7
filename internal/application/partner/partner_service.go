// Package partner manages customer and supplier master data. Balances are
// never set directly through this service; they move only through invoice
// effects and manual ledger entries.
package partner

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/partner"
)

// PartnerService handles customer and supplier CRUD
type PartnerService struct {
	customers partner.CustomerRepository
	suppliers partner.SupplierRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(customers partner.CustomerRepository, suppliers partner.SupplierRepository) *PartnerService {
	return &PartnerService{customers: customers, suppliers: suppliers}
}

// CustomerInput is the payload for creating or replacing a customer
type CustomerInput struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=general individual corporate"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email" binding:"omitempty,email"`
	Address      string          `json:"address"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	DueDay       int             `json:"dueDay" binding:"omitempty,min=1,max=31"`
}

// CreateCustomer adds a new customer with zero balance
func (s *PartnerService) CreateCustomer(input CustomerInput) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(input.Name, partner.CustomerType(input.Type))
	if err != nil {
		return nil, err
	}
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.Address = input.Address
	customer.DueDay = input.DueDay
	if err := customer.SetDiscountRate(input.DiscountRate); err != nil {
		return nil, err
	}
	if err := s.customers.Save(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer replaces a customer's profile by id. The running balance is
// carried over untouched.
func (s *PartnerService) UpdateCustomer(input CustomerInput) (*partner.Customer, error) {
	customer, err := s.customers.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	customer.Name = input.Name
	customer.Type = partner.CustomerType(input.Type)
	customer.Phone = input.Phone
	customer.Email = input.Email
	customer.Address = input.Address
	customer.DueDay = input.DueDay
	if err := customer.SetDiscountRate(input.DiscountRate); err != nil {
		return nil, err
	}
	if err := s.customers.Save(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer by id
func (s *PartnerService) DeleteCustomer(id uuid.UUID) error {
	return s.customers.Remove(id)
}

// GetCustomer returns one customer
func (s *PartnerService) GetCustomer(id uuid.UUID) (*partner.Customer, error) {
	return s.customers.FindByID(id)
}

// ListCustomers returns all customers
func (s *PartnerService) ListCustomers() []partner.Customer {
	return s.customers.FindAll()
}

// SupplierInput is the payload for creating or replacing a supplier
type SupplierInput struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name" binding:"required"`
	ContactPerson string    `json:"contactPerson"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email" binding:"omitempty,email"`
	Address       string    `json:"address"`
}

// CreateSupplier adds a new supplier with zero balance
func (s *PartnerService) CreateSupplier(input SupplierInput) (*partner.Supplier, error) {
	supplier, err := partner.NewSupplier(input.Name)
	if err != nil {
		return nil, err
	}
	supplier.ContactPerson = input.ContactPerson
	supplier.Phone = input.Phone
	supplier.Email = input.Email
	supplier.Address = input.Address
	if err := s.suppliers.Save(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier replaces a supplier's profile by id, keeping the balance
func (s *PartnerService) UpdateSupplier(input SupplierInput) (*partner.Supplier, error) {
	supplier, err := s.suppliers.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	supplier.Name = input.Name
	supplier.ContactPerson = input.ContactPerson
	supplier.Phone = input.Phone
	supplier.Email = input.Email
	supplier.Address = input.Address
	supplier.Touch()
	if err := s.suppliers.Save(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier by id
func (s *PartnerService) DeleteSupplier(id uuid.UUID) error {
	return s.suppliers.Remove(id)
}

// GetSupplier returns one supplier
func (s *PartnerService) GetSupplier(id uuid.UUID) (*partner.Supplier, error) {
	return s.suppliers.FindByID(id)
}

// ListSuppliers returns all suppliers
func (s *PartnerService) ListSuppliers() []partner.Supplier {
	return s.suppliers.FindAll()
}
