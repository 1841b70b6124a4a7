package memory

import (
	"slices"

	"github.com/google/uuid"

	"github.com/vinpos/backend/internal/domain/hr"
	"github.com/vinpos/backend/internal/domain/identity"
	"github.com/vinpos/backend/internal/domain/shared"
)

func cloneUser(u *identity.User) *identity.User {
	cp := *u
	cp.AllowedStoreIDs = slices.Clone(u.AllowedStoreIDs)
	cp.AllowedWarehouseIDs = slices.Clone(u.AllowedWarehouseIDs)
	return &cp
}

func cloneRole(r *identity.Role) *identity.Role {
	cp := *r
	cp.Permissions = slices.Clone(r.Permissions)
	return &cp
}

// UserRepository is the in-memory identity.UserRepository
type UserRepository struct {
	users *collection[identity.User]
}

// NewUserRepository creates an empty user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{users: newCollection(cloneUser)}
}

// FindByID finds a user by its ID
func (r *UserRepository) FindByID(id uuid.UUID) (*identity.User, error) {
	return r.users.get(id)
}

// FindByUsername finds a user by username
func (r *UserRepository) FindByUsername(username string) (*identity.User, error) {
	return r.users.first(func(u *identity.User) bool { return u.Username == username })
}

// FindAll returns all users
func (r *UserRepository) FindAll() []identity.User {
	return r.users.all()
}

// Save creates or replaces a user
func (r *UserRepository) Save(user *identity.User) error {
	if user == nil || user.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.users.put(user.ID, user)
	return nil
}

// Remove deletes a user by ID
func (r *UserRepository) Remove(id uuid.UUID) error {
	return r.users.remove(id)
}

// RoleRepository is the in-memory identity.RoleRepository
type RoleRepository struct {
	roles *collection[identity.Role]
}

// NewRoleRepository creates an empty role repository
func NewRoleRepository() *RoleRepository {
	return &RoleRepository{roles: newCollection(cloneRole)}
}

// FindByID finds a role by its ID
func (r *RoleRepository) FindByID(id uuid.UUID) (*identity.Role, error) {
	return r.roles.get(id)
}

// FindAll returns all roles
func (r *RoleRepository) FindAll() []identity.Role {
	return r.roles.all()
}

// Save creates or replaces a role
func (r *RoleRepository) Save(role *identity.Role) error {
	if role == nil || role.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.roles.put(role.ID, role)
	return nil
}

// Remove deletes a role by ID
func (r *RoleRepository) Remove(id uuid.UUID) error {
	return r.roles.remove(id)
}

// EmployeeRepository is the in-memory hr.EmployeeRepository
type EmployeeRepository struct {
	employees *collection[hr.Employee]
}

// NewEmployeeRepository creates an empty employee repository
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: newCollection(shallow[hr.Employee])}
}

// FindByID finds an employee by its ID
func (r *EmployeeRepository) FindByID(id uuid.UUID) (*hr.Employee, error) {
	return r.employees.get(id)
}

// FindAll returns all employees
func (r *EmployeeRepository) FindAll() []hr.Employee {
	return r.employees.all()
}

// Save creates or replaces an employee
func (r *EmployeeRepository) Save(employee *hr.Employee) error {
	if employee == nil || employee.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.employees.put(employee.ID, employee)
	return nil
}

// Remove deletes an employee by ID
func (r *EmployeeRepository) Remove(id uuid.UUID) error {
	return r.employees.remove(id)
}

// LeaveRequestRepository is the in-memory hr.LeaveRequestRepository
type LeaveRequestRepository struct {
	leaves *collection[hr.LeaveRequest]
}

// NewLeaveRequestRepository creates an empty leave request repository
func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{leaves: newCollection(shallow[hr.LeaveRequest])}
}

// FindByID finds a leave request by its ID
func (r *LeaveRequestRepository) FindByID(id uuid.UUID) (*hr.LeaveRequest, error) {
	return r.leaves.get(id)
}

// FindAll returns all leave requests
func (r *LeaveRequestRepository) FindAll() []hr.LeaveRequest {
	return r.leaves.all()
}

// FindByEmployee returns the leave requests of one employee
func (r *LeaveRequestRepository) FindByEmployee(employeeID uuid.UUID) []hr.LeaveRequest {
	return r.leaves.filter(func(l *hr.LeaveRequest) bool { return l.EmployeeID == employeeID })
}

// Save creates or replaces a leave request
func (r *LeaveRequestRepository) Save(leave *hr.LeaveRequest) error {
	if leave == nil || leave.ID == uuid.Nil {
		return shared.ErrInvalidInput
	}
	r.leaves.put(leave.ID, leave)
	return nil
}

// Remove deletes a leave request by ID
func (r *LeaveRequestRepository) Remove(id uuid.UUID) error {
	return r.leaves.remove(id)
}
