package identity

import (
	"slices"
	"strings"

	"github.com/vinpos/backend/internal/domain/shared"
)

// Permission names a UI surface or action a role may access
type Permission string

const (
	PermViewDashboard  Permission = "view_dashboard"
	PermViewPOS        Permission = "view_pos"
	PermViewProducts   Permission = "view_products"
	PermViewSales      Permission = "view_sales"
	PermViewPurchases  Permission = "view_purchases"
	PermViewReturns    Permission = "view_returns"
	PermViewFinance    Permission = "view_finance"
	PermViewAccounting Permission = "view_accounting"
	PermViewTransfer   Permission = "view_transfer"
	PermViewHR         Permission = "view_hr"
	PermViewPartners   Permission = "view_partners"
	PermViewReports    Permission = "view_reports"
	PermViewAdmin      Permission = "view_admin"
	PermManageUsers    Permission = "manage_users"
)

// Role is a named flat set of permissions
type Role struct {
	shared.BaseEntity
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// NewRole creates a role with the given permission set
func NewRole(name string, permissions []Permission) (*Role, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Role name cannot be empty")
	}
	return &Role{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Permissions: permissions,
	}, nil
}

// HasPermission reports whether the role grants the permission
func (r *Role) HasPermission(perm Permission) bool {
	return slices.Contains(r.Permissions, perm)
}
