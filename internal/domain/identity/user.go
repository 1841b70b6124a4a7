package identity

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vinpos/backend/internal/domain/shared"
)

// User is an operator account. Authentication is a plain username/password
// check; authorization is a flat permission lookup through the user's role.
type User struct {
	shared.BaseEntity
	Username            string      `json:"username"`
	PasswordHash        string      `json:"-"`
	FirstName           string      `json:"firstName"`
	LastName            string      `json:"lastName"`
	RoleID              uuid.UUID   `json:"roleId"`
	AllowedStoreIDs     []uuid.UUID `json:"allowedStoreIds"`
	AllowedWarehouseIDs []uuid.UUID `json:"allowedWarehouseIds"`
}

// NewUser creates a user with a bcrypt-hashed password
func NewUser(username, password string, roleID uuid.UUID) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}

	user := &User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   username,
		RoleID:     roleID,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPassword replaces the stored password hash
func (u *User) SetPassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// DisplayName returns the human-readable name, falling back to the username
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}
