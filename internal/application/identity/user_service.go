package identity

import (
	"errors"

	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/identity"
	"github.com/vinpos/backend/internal/domain/shared"
)

// UserService handles operator account and role management
type UserService struct {
	users identity.UserRepository
	roles identity.RoleRepository
}

// NewUserService creates a new UserService
func NewUserService(users identity.UserRepository, roles identity.RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

// UserInput is the payload for creating or replacing an operator account.
// An empty password on update keeps the existing one.
type UserInput struct {
	ID                  uuid.UUID   `json:"id"`
	Username            string      `json:"username" binding:"required"`
	Password            string      `json:"password"`
	FirstName           string      `json:"firstName"`
	LastName            string      `json:"lastName"`
	RoleID              uuid.UUID   `json:"roleId"`
	AllowedStoreIDs     []uuid.UUID `json:"allowedStoreIds"`
	AllowedWarehouseIDs []uuid.UUID `json:"allowedWarehouseIds"`
}

// CreateUser adds a new operator account. Usernames must be unique.
func (s *UserService) CreateUser(input UserInput) (*identity.User, error) {
	if _, err := s.users.FindByUsername(input.Username); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_USERNAME", "A user with this username already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(input.Username, input.Password, input.RoleID)
	if err != nil {
		return nil, err
	}
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.AllowedStoreIDs = input.AllowedStoreIDs
	user.AllowedWarehouseIDs = input.AllowedWarehouseIDs
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces an operator account's content by id
func (s *UserService) UpdateUser(input UserInput) (*identity.User, error) {
	user, err := s.users.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	user.Username = input.Username
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.RoleID = input.RoleID
	user.AllowedStoreIDs = input.AllowedStoreIDs
	user.AllowedWarehouseIDs = input.AllowedWarehouseIDs
	if input.Password != "" {
		if err := user.SetPassword(input.Password); err != nil {
			return nil, err
		}
	} else {
		user.Touch()
	}
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an operator account by id
func (s *UserService) DeleteUser(id uuid.UUID) error {
	return s.users.Remove(id)
}

// GetUser returns one operator account
func (s *UserService) GetUser(id uuid.UUID) (*identity.User, error) {
	return s.users.FindByID(id)
}

// ListUsers returns all operator accounts
func (s *UserService) ListUsers() []identity.User {
	return s.users.FindAll()
}

// RoleInput is the payload for creating or replacing a role
type RoleInput struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name" binding:"required"`
	Permissions []identity.Permission `json:"permissions"`
}

// CreateRole adds a new role
func (s *UserService) CreateRole(input RoleInput) (*identity.Role, error) {
	role, err := identity.NewRole(input.Name, input.Permissions)
	if err != nil {
		return nil, err
	}
	if err := s.roles.Save(role); err != nil {
		return nil, err
	}
	return role, nil
}

// UpdateRole replaces a role's content by id
func (s *UserService) UpdateRole(input RoleInput) (*identity.Role, error) {
	role, err := s.roles.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	role.Name = input.Name
	role.Permissions = input.Permissions
	role.Touch()
	if err := s.roles.Save(role); err != nil {
		return nil, err
	}
	return role, nil
}

// DeleteRole removes a role by id
func (s *UserService) DeleteRole(id uuid.UUID) error {
	return s.roles.Remove(id)
}

// ListRoles returns all roles
func (s *UserService) ListRoles() []identity.Role {
	return s.roles.FindAll()
}
