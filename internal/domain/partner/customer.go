package partner

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/shared"
)

// CustomerType represents the kind of customer
type CustomerType string

const (
	CustomerTypeGeneral    CustomerType = "general"    // Walk-in retail customer
	CustomerTypeIndividual CustomerType = "individual" // Named personal customer
	CustomerTypeCorporate  CustomerType = "corporate"  // Business/company
)

// Customer represents a buyer holding a signed running balance.
// A positive balance means the customer owes the business money.
type Customer struct {
	shared.BaseEntity
	Name         string          `json:"name"`
	Type         CustomerType    `json:"type"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	DueDay       int             `json:"dueDay"`
	Balance      decimal.Decimal `json:"balance"`
}

// NewCustomer creates a new customer with zero balance
func NewCustomer(name string, customerType CustomerType) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	switch customerType {
	case CustomerTypeGeneral, CustomerTypeIndividual, CustomerTypeCorporate:
	default:
		return nil, shared.NewDomainError("INVALID_TYPE", "Unknown customer type")
	}

	return &Customer{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Type:         customerType,
		DiscountRate: decimal.Zero,
		Balance:      decimal.Zero,
	}, nil
}

// AdjustBalance applies a signed delta to the running balance.
// The balance is a pure accumulator; it is never recomputed from history,
// so every adjustment must be paired with an exact inverse on reversal.
func (c *Customer) AdjustBalance(delta decimal.Decimal) {
	c.Balance = c.Balance.Add(delta)
	c.Touch()
}

// SetDiscountRate updates the customer discount percentage
func (c *Customer) SetDiscountRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount rate must be between 0 and 100")
	}
	c.DiscountRate = rate
	c.Touch()
	return nil
}
