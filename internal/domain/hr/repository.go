package hr

import (
	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee storage
type EmployeeRepository interface {
	FindByID(id uuid.UUID) (*Employee, error)
	FindAll() []Employee
	Save(employee *Employee) error
	Remove(id uuid.UUID) error
}

// LeaveRequestRepository defines the interface for leave request storage
type LeaveRequestRepository interface {
	FindByID(id uuid.UUID) (*LeaveRequest, error)
	FindAll() []LeaveRequest
	FindByEmployee(employeeID uuid.UUID) []LeaveRequest
	Save(leave *LeaveRequest) error
	Remove(id uuid.UUID) error
}
