package hr

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vinpos/backend/internal/domain/shared"
)

// Employee is a personnel record
type Employee struct {
	shared.BaseEntity
	Name     string          `json:"name"`
	Position string          `json:"position"`
	Salary   decimal.Decimal `json:"salary"`
	HireDate time.Time       `json:"hireDate"`
	Phone    string          `json:"phone"`
	Active   bool            `json:"active"`
}

// NewEmployee creates an employee record
func NewEmployee(name, position string) (*Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Employee name cannot be empty")
	}
	return &Employee{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Position:   position,
		Salary:     decimal.Zero,
		HireDate:   time.Now(),
		Active:     true,
	}, nil
}

// LeaveStatus is the approval state of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// LeaveRequest records a requested absence for an employee
type LeaveRequest struct {
	shared.BaseEntity
	EmployeeID uuid.UUID   `json:"employeeId"`
	From       time.Time   `json:"from"`
	To         time.Time   `json:"to"`
	Kind       string      `json:"kind"`
	Status     LeaveStatus `json:"status"`
	Note       string      `json:"note"`
}

// NewLeaveRequest creates a pending leave request
func NewLeaveRequest(employeeID uuid.UUID, from, to time.Time, kind string) (*LeaveRequest, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee ID is required")
	}
	if to.Before(from) {
		return nil, shared.NewDomainError("INVALID_RANGE", "Leave end date precedes start date")
	}
	return &LeaveRequest{
		BaseEntity: shared.NewBaseEntity(),
		EmployeeID: employeeID,
		From:       from,
		To:         to,
		Kind:       kind,
		Status:     LeaveStatusPending,
	}, nil
}
