package handler

import (
	"github.com/gin-gonic/gin"

	hrapp "github.com/vinpos/backend/internal/application/hr"
	"github.com/vinpos/backend/internal/domain/hr"
)

// HRHandler handles personnel and leave API endpoints
type HRHandler struct {
	BaseHandler
	employeeService *hrapp.EmployeeService
}

// NewHRHandler creates a new HRHandler
func NewHRHandler(employeeService *hrapp.EmployeeService) *HRHandler {
	return &HRHandler{employeeService: employeeService}
}

// RegisterRoutes registers employee and leave routes
func (h *HRHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.GET("/:id/leaves", h.ListEmployeeLeaves)
		employees.POST("", h.CreateEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
	}
	leaves := rg.Group("/leaves")
	{
		leaves.GET("", h.ListLeaves)
		leaves.POST("", h.RequestLeave)
		leaves.PUT("/:id/status", h.ResolveLeave)
		leaves.DELETE("/:id", h.DeleteLeave)
	}
}

// CreateEmployee adds a personnel record
func (h *HRHandler) CreateEmployee(c *gin.Context) {
	var input hrapp.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	employee, err := h.employeeService.CreateEmployee(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// UpdateEmployee replaces a personnel record
func (h *HRHandler) UpdateEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	var input hrapp.EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	employee, err := h.employeeService.UpdateEmployee(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// DeleteEmployee removes a personnel record
func (h *HRHandler) DeleteEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	if err := h.employeeService.DeleteEmployee(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetEmployee returns one personnel record
func (h *HRHandler) GetEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	employee, err := h.employeeService.GetEmployee(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// ListEmployees returns all personnel records
func (h *HRHandler) ListEmployees(c *gin.Context) {
	employees := h.employeeService.ListEmployees()
	h.SuccessWithTotal(c, employees, len(employees))
}

// ListEmployeeLeaves returns one employee's leave requests
func (h *HRHandler) ListEmployeeLeaves(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	leaves := h.employeeService.ListLeavesByEmployee(id)
	h.SuccessWithTotal(c, leaves, len(leaves))
}

// RequestLeave files a pending leave request
func (h *HRHandler) RequestLeave(c *gin.Context) {
	var input hrapp.LeaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	leave, err := h.employeeService.RequestLeave(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, leave)
}

// ResolveLeaveRequest is the payload for approving or rejecting a leave
type ResolveLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// ResolveLeave approves or rejects a pending leave request
func (h *HRHandler) ResolveLeave(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid leave ID")
		return
	}
	var req ResolveLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	leave, err := h.employeeService.ResolveLeave(id, hr.LeaveStatus(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, leave)
}

// DeleteLeave removes a leave request
func (h *HRHandler) DeleteLeave(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid leave ID")
		return
	}
	if err := h.employeeService.DeleteLeave(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListLeaves returns all leave requests
func (h *HRHandler) ListLeaves(c *gin.Context) {
	leaves := h.employeeService.ListLeaves()
	h.SuccessWithTotal(c, leaves, len(leaves))
}
