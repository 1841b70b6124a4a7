package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinpos/backend/internal/domain/identity"
	"github.com/vinpos/backend/internal/domain/shared"
	"github.com/vinpos/backend/internal/infrastructure/memory"
)

func newAuthFixture(t *testing.T) (*AuthService, *memory.Store, *identity.User, *identity.Role) {
	t.Helper()

	store := memory.NewStore(shared.Settings{})

	role, err := identity.NewRole("Cashier", []identity.Permission{identity.PermViewPOS, identity.PermViewSales})
	require.NoError(t, err)
	require.NoError(t, store.Roles.Save(role))

	user, err := identity.NewUser("cashier1", "secret", role.ID)
	require.NoError(t, err)
	require.NoError(t, store.Users.Save(user))

	return NewAuthService(store.Users, store.Roles, nil), store, user, role
}

func TestLoginSuccess(t *testing.T) {
	svc, _, user, role := newAuthFixture(t)

	session, err := svc.Login(LoginInput{Username: "cashier1", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, role.Name, session.RoleName)
	assert.Contains(t, session.Permissions, identity.PermViewPOS)
}

func TestLoginWrongPasswordAndUnknownUserLookTheSame(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, badPass := svc.Login(LoginInput{Username: "cashier1", Password: "wrong"})
	_, badUser := svc.Login(LoginInput{Username: "ghost", Password: "secret"})

	assert.ErrorIs(t, badPass, shared.ErrUnauthorized)
	assert.ErrorIs(t, badUser, shared.ErrUnauthorized)
}

func TestCheckPermission(t *testing.T) {
	svc, store, user, _ := newAuthFixture(t)

	assert.True(t, svc.CheckPermission(user.ID, identity.PermViewPOS))
	assert.False(t, svc.CheckPermission(user.ID, identity.PermManageUsers))
	assert.False(t, svc.CheckPermission(uuid.New(), identity.PermViewPOS))

	// A user whose role was removed is denied everything
	require.NoError(t, store.Roles.Remove(user.RoleID))
	assert.False(t, svc.CheckPermission(user.ID, identity.PermViewPOS))
}
