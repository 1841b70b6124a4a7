package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/vinpos/backend/internal/application/identity"
)

// IdentityHandler handles authentication, user and role API endpoints
type IdentityHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	userService *identityapp.UserService
}

// NewIdentityHandler creates a new IdentityHandler
func NewIdentityHandler(authService *identityapp.AuthService, userService *identityapp.UserService) *IdentityHandler {
	return &IdentityHandler{authService: authService, userService: userService}
}

// RegisterRoutes registers auth, user and role routes
func (h *IdentityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)

	users := rg.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
	roles := rg.Group("/roles")
	{
		roles.GET("", h.ListRoles)
		roles.POST("", h.CreateRole)
		roles.PUT("/:id", h.UpdateRole)
		roles.DELETE("/:id", h.DeleteRole)
	}
}

// Login verifies credentials and returns the operator snapshot
func (h *IdentityHandler) Login(c *gin.Context) {
	var input identityapp.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	session, err := h.authService.Login(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, session)
}

// CreateUser adds an operator account
func (h *IdentityHandler) CreateUser(c *gin.Context) {
	var input identityapp.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	user, err := h.userService.CreateUser(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// UpdateUser replaces an operator account
func (h *IdentityHandler) UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	var input identityapp.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	user, err := h.userService.UpdateUser(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// DeleteUser removes an operator account
func (h *IdentityHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	if err := h.userService.DeleteUser(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetUser returns one operator account
func (h *IdentityHandler) GetUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	user, err := h.userService.GetUser(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// ListUsers returns all operator accounts
func (h *IdentityHandler) ListUsers(c *gin.Context) {
	users := h.userService.ListUsers()
	h.SuccessWithTotal(c, users, len(users))
}

// CreateRole adds a role
func (h *IdentityHandler) CreateRole(c *gin.Context) {
	var input identityapp.RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	role, err := h.userService.CreateRole(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, role)
}

// UpdateRole replaces a role
func (h *IdentityHandler) UpdateRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid role ID")
		return
	}
	var input identityapp.RoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	role, err := h.userService.UpdateRole(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, role)
}

// DeleteRole removes a role
func (h *IdentityHandler) DeleteRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid role ID")
		return
	}
	if err := h.userService.DeleteRole(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListRoles returns all roles
func (h *IdentityHandler) ListRoles(c *gin.Context) {
	roles := h.userService.ListRoles()
	h.SuccessWithTotal(c, roles, len(roles))
}
