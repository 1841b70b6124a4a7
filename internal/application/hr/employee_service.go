// Package hr manages personnel records and leave requests.
package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/hr"
	"github.com/vinpos/backend/internal/domain/shared"
)

// EmployeeService handles personnel and leave management
type EmployeeService struct {
	employees hr.EmployeeRepository
	leaves    hr.LeaveRequestRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employees hr.EmployeeRepository, leaves hr.LeaveRequestRepository) *EmployeeService {
	return &EmployeeService{employees: employees, leaves: leaves}
}

// EmployeeInput is the payload for creating or replacing an employee
type EmployeeInput struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name" binding:"required"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
	HireDate time.Time       `json:"hireDate"`
	Phone    string          `json:"phone"`
	Active   bool            `json:"active"`
}

// CreateEmployee adds a personnel record
func (s *EmployeeService) CreateEmployee(input EmployeeInput) (*hr.Employee, error) {
	employee, err := hr.NewEmployee(input.Name, input.Position)
	if err != nil {
		return nil, err
	}
	employee.Salary = input.Salary
	if !input.HireDate.IsZero() {
		employee.HireDate = input.HireDate
	}
	employee.Phone = input.Phone
	employee.Active = input.Active
	if err := s.employees.Save(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// UpdateEmployee replaces a personnel record by id
func (s *EmployeeService) UpdateEmployee(input EmployeeInput) (*hr.Employee, error) {
	employee, err := s.employees.FindByID(input.ID)
	if err != nil {
		return nil, err
	}
	employee.Name = input.Name
	employee.Position = input.Position
	employee.Salary = input.Salary
	if !input.HireDate.IsZero() {
		employee.HireDate = input.HireDate
	}
	employee.Phone = input.Phone
	employee.Active = input.Active
	employee.Touch()
	if err := s.employees.Save(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes a personnel record and the employee's leave requests
func (s *EmployeeService) DeleteEmployee(id uuid.UUID) error {
	for _, leave := range s.leaves.FindByEmployee(id) {
		if err := s.leaves.Remove(leave.ID); err != nil {
			return err
		}
	}
	return s.employees.Remove(id)
}

// GetEmployee returns one personnel record
func (s *EmployeeService) GetEmployee(id uuid.UUID) (*hr.Employee, error) {
	return s.employees.FindByID(id)
}

// ListEmployees returns all personnel records
func (s *EmployeeService) ListEmployees() []hr.Employee {
	return s.employees.FindAll()
}

// LeaveInput is the payload for requesting a leave
type LeaveInput struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employeeId" binding:"required"`
	From       time.Time `json:"from" binding:"required"`
	To         time.Time `json:"to" binding:"required"`
	Kind       string    `json:"kind"`
	Note       string    `json:"note"`
}

// RequestLeave files a pending leave request for an existing employee
func (s *EmployeeService) RequestLeave(input LeaveInput) (*hr.LeaveRequest, error) {
	if _, err := s.employees.FindByID(input.EmployeeID); err != nil {
		return nil, err
	}
	leave, err := hr.NewLeaveRequest(input.EmployeeID, input.From, input.To, input.Kind)
	if err != nil {
		return nil, err
	}
	leave.Note = input.Note
	if err := s.leaves.Save(leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// ResolveLeave approves or rejects a pending leave request
func (s *EmployeeService) ResolveLeave(id uuid.UUID, status hr.LeaveStatus) (*hr.LeaveRequest, error) {
	switch status {
	case hr.LeaveStatusApproved, hr.LeaveStatusRejected:
	default:
		return nil, shared.NewDomainError("INVALID_STATUS", "Leave can only be approved or rejected")
	}
	leave, err := s.leaves.FindByID(id)
	if err != nil {
		return nil, err
	}
	leave.Status = status
	leave.Touch()
	if err := s.leaves.Save(leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// DeleteLeave removes a leave request by id
func (s *EmployeeService) DeleteLeave(id uuid.UUID) error {
	return s.leaves.Remove(id)
}

// ListLeaves returns all leave requests
func (s *EmployeeService) ListLeaves() []hr.LeaveRequest {
	return s.leaves.FindAll()
}

// ListLeavesByEmployee returns one employee's leave requests
func (s *EmployeeService) ListLeavesByEmployee(employeeID uuid.UUID) []hr.LeaveRequest {
	return s.leaves.FindByEmployee(employeeID)
}
