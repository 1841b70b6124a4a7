package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/vinpos/backend/internal/application/finance"
)

// FinanceHandler handles finance reference data API endpoints
type FinanceHandler struct {
	BaseHandler
	referenceService *financeapp.ReferenceService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(referenceService *financeapp.ReferenceService) *FinanceHandler {
	return &FinanceHandler{referenceService: referenceService}
}

// RegisterRoutes registers bank, register, expense category and account routes
func (h *FinanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	banks := rg.Group("/banks")
	{
		banks.GET("", h.ListBanks)
		banks.POST("", h.CreateBank)
		banks.PUT("/:id", h.UpdateBank)
		banks.DELETE("/:id", h.DeleteBank)
	}
	registers := rg.Group("/cash-registers")
	{
		registers.GET("", h.ListRegisters)
		registers.POST("", h.CreateRegister)
		registers.PUT("/:id", h.UpdateRegister)
		registers.DELETE("/:id", h.DeleteRegister)
	}
	expenseCategories := rg.Group("/expense-categories")
	{
		expenseCategories.GET("", h.ListExpenseCategories)
		expenseCategories.POST("", h.CreateExpenseCategory)
		expenseCategories.PUT("/:id", h.UpdateExpenseCategory)
		expenseCategories.DELETE("/:id", h.DeleteExpenseCategory)
	}
	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.PUT("/:id", h.UpdateAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
	}
}

// CreateBank adds a bank account
func (h *FinanceHandler) CreateBank(c *gin.Context) {
	var input financeapp.BankAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	bank, err := h.referenceService.CreateBank(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, bank)
}

// UpdateBank replaces a bank account
func (h *FinanceHandler) UpdateBank(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid bank ID")
		return
	}
	var input financeapp.BankAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	bank, err := h.referenceService.UpdateBank(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bank)
}

// DeleteBank removes a bank account
func (h *FinanceHandler) DeleteBank(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid bank ID")
		return
	}
	if err := h.referenceService.DeleteBank(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListBanks returns all bank accounts
func (h *FinanceHandler) ListBanks(c *gin.Context) {
	banks := h.referenceService.ListBanks()
	h.SuccessWithTotal(c, banks, len(banks))
}

// CreateRegister adds a cash register
func (h *FinanceHandler) CreateRegister(c *gin.Context) {
	var input financeapp.CashRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	register, err := h.referenceService.CreateRegister(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, register)
}

// UpdateRegister replaces a cash register
func (h *FinanceHandler) UpdateRegister(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid register ID")
		return
	}
	var input financeapp.CashRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	register, err := h.referenceService.UpdateRegister(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, register)
}

// DeleteRegister removes a cash register
func (h *FinanceHandler) DeleteRegister(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid register ID")
		return
	}
	if err := h.referenceService.DeleteRegister(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListRegisters returns all cash registers
func (h *FinanceHandler) ListRegisters(c *gin.Context) {
	registers := h.referenceService.ListRegisters()
	h.SuccessWithTotal(c, registers, len(registers))
}

// CreateExpenseCategory adds an expense category
func (h *FinanceHandler) CreateExpenseCategory(c *gin.Context) {
	var input financeapp.ExpenseCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	category, err := h.referenceService.CreateExpenseCategory(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// UpdateExpenseCategory renames an expense category
func (h *FinanceHandler) UpdateExpenseCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense category ID")
		return
	}
	var input financeapp.ExpenseCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	category, err := h.referenceService.UpdateExpenseCategory(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// DeleteExpenseCategory removes an expense category
func (h *FinanceHandler) DeleteExpenseCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid expense category ID")
		return
	}
	if err := h.referenceService.DeleteExpenseCategory(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListExpenseCategories returns all expense categories
func (h *FinanceHandler) ListExpenseCategories(c *gin.Context) {
	categories := h.referenceService.ListExpenseCategories()
	h.SuccessWithTotal(c, categories, len(categories))
}

// CreateAccount adds a chart-of-accounts node
func (h *FinanceHandler) CreateAccount(c *gin.Context) {
	var input financeapp.AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	account, err := h.referenceService.CreateAccount(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// UpdateAccount replaces a chart-of-accounts node
func (h *FinanceHandler) UpdateAccount(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}
	var input financeapp.AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	account, err := h.referenceService.UpdateAccount(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// DeleteAccount removes a chart-of-accounts node
func (h *FinanceHandler) DeleteAccount(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}
	if err := h.referenceService.DeleteAccount(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListAccounts returns the chart of accounts
func (h *FinanceHandler) ListAccounts(c *gin.Context) {
	accounts := h.referenceService.ListAccounts()
	h.SuccessWithTotal(c, accounts, len(accounts))
}
