package identity

import (
	"github.com/google/uuid"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	FindByID(id uuid.UUID) (*User, error)
	FindByUsername(username string) (*User, error)
	FindAll() []User
	Save(user *User) error
	Remove(id uuid.UUID) error
}

// RoleRepository defines the interface for role storage
type RoleRepository interface {
	FindByID(id uuid.UUID) (*Role, error)
	FindAll() []Role
	Save(role *Role) error
	Remove(id uuid.UUID) error
}
