// Package identity handles operator authentication and the flat
// role/permission model.
package identity

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vinpos/backend/internal/domain/identity"
	"github.com/vinpos/backend/internal/domain/shared"
)

// AuthService verifies credentials and answers permission checks
type AuthService struct {
	users  identity.UserRepository
	roles  identity.RoleRepository
	logger *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.UserRepository, roles identity.RoleRepository, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, roles: roles, logger: logger}
}

// LoginInput carries plaintext credentials
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Session is the signed-in operator snapshot returned on successful login
type Session struct {
	UserID      uuid.UUID             `json:"userId"`
	Username    string                `json:"username"`
	DisplayName string                `json:"displayName"`
	RoleID      uuid.UUID             `json:"roleId"`
	RoleName    string                `json:"roleName"`
	Permissions []identity.Permission `json:"permissions"`
}

// Login checks the credentials and returns the operator snapshot. A wrong
// username and a wrong password produce the same error.
func (s *AuthService) Login(input LoginInput) (*Session, error) {
	user, err := s.users.FindByUsername(input.Username)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.CheckPassword(input.Password) {
		s.logger.Warn("failed login attempt", zap.String("username", input.Username))
		return nil, shared.ErrUnauthorized
	}

	session := &Session{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName(),
		RoleID:      user.RoleID,
	}
	if role, err := s.roles.FindByID(user.RoleID); err == nil {
		session.RoleName = role.Name
		session.Permissions = role.Permissions
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))
	return session, nil
}

// CheckPermission reports whether the user's role grants the permission.
// Missing users and missing roles both deny.
func (s *AuthService) CheckPermission(userID uuid.UUID, perm identity.Permission) bool {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return false
	}
	role, err := s.roles.FindByID(user.RoleID)
	if err != nil {
		return false
	}
	return role.HasPermission(perm)
}
