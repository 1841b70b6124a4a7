package partner

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/shared"
)

// Supplier represents a vendor holding a signed running balance.
// A positive balance means the business owes the supplier money; the sign
// convention is deliberately the mirror of Customer.
type Supplier struct {
	shared.BaseEntity
	Name          string          `json:"name"`
	ContactPerson string          `json:"contactPerson"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	Balance       decimal.Decimal `json:"balance"`
}

// NewSupplier creates a new supplier with zero balance
func NewSupplier(name string) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Balance:    decimal.Zero,
	}, nil
}

// AdjustBalance applies a signed delta to the running balance
func (s *Supplier) AdjustBalance(delta decimal.Decimal) {
	s.Balance = s.Balance.Add(delta)
	s.Touch()
}
