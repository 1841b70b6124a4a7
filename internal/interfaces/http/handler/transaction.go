package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/vinpos/backend/internal/application/finance"
)

// TransactionHandler handles manual ledger API endpoints
type TransactionHandler struct {
	BaseHandler
	transactionService *financeapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *financeapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// RegisterRoutes registers ledger routes
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.List)
		transactions.GET("/:id", h.Get)
		transactions.POST("", h.Create)
		transactions.PUT("/:id", h.Update)
		transactions.DELETE("/:id", h.Delete)
	}
}

// Create records a manual ledger entry
func (h *TransactionHandler) Create(c *gin.Context) {
	var input financeapp.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	tx, err := h.transactionService.Add(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// Update replaces a ledger entry's content
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}
	var input financeapp.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}
	input.ID = id

	tx, err := h.transactionService.Update(input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// Delete removes a ledger entry
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}
	if err := h.transactionService.Delete(id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Get returns one ledger entry
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}
	tx, err := h.transactionService.GetByID(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// List returns the full ledger
func (h *TransactionHandler) List(c *gin.Context) {
	transactions := h.transactionService.List()
	h.SuccessWithTotal(c, transactions, len(transactions))
}
