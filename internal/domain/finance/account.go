package finance

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/shared"
)

// SystemLink marks what part of the system a chart-of-accounts node mirrors.
// The chart is static reference data; nothing is ever posted to it.
type SystemLink string

const (
	SystemLinkNone         SystemLink = "NONE"
	SystemLinkCash         SystemLink = "CASH"
	SystemLinkCashRegister SystemLink = "CASH_REGISTER"
	SystemLinkBank         SystemLink = "BANK"
	SystemLinkInventory    SystemLink = "INVENTORY"
	SystemLinkCustomerAR   SystemLink = "CUSTOMER_AR"
	SystemLinkSales        SystemLink = "SALES"
	SystemLinkExpense      SystemLink = "EXPENSE"
)

// Account is one node of the chart-of-accounts tree
type Account struct {
	shared.BaseEntity
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Level        int        `json:"level"`
	ParentID     uuid.UUID  `json:"parentId"`
	SystemLink   SystemLink `json:"systemLink"`
	SystemLinkID uuid.UUID  `json:"systemLinkId"`
}

// NewAccount creates a chart-of-accounts node
func NewAccount(code, name string, level int) (*Account, error) {
	if strings.TrimSpace(code) == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Account code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if level < 1 {
		return nil, shared.NewDomainError("INVALID_LEVEL", "Account level must be at least 1")
	}
	return &Account{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       name,
		Level:      level,
		SystemLink: SystemLinkNone,
	}, nil
}
