package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/sidharthsanthos/PKRA/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests for the expense book.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers expense routes.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	cycle := rg.Group("/cycles/:cycleID")
	{
		cycle.POST("/expenses", h.recordExpense)
		cycle.GET("/expenses", h.listExpenses)
	}
	rg.DELETE("/expenses/:expenseID", h.deleteExpense)
}

// recordExpense godoc
// @Summary Record an expense against a cycle
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Param   expense body dto.RecordExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Cycle not found"
// @Router /cycles/{cycleID}/expenses [post]
func (h *expenseHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Operator-ID header is required"})
		return
	}

	expense, err := h.expenseService.RecordExpense(c.Request.Context(), cycleID, req, operatorID)
	if err != nil {
		logger.Warn("Failed to record expense", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to record expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List a cycle's expenses
// @Tags expenses
// @Produce  json
// @Param   cycleID path string true "Cycle ID"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 404 {object} map[string]string "Cycle not found"
// @Router /cycles/{cycleID}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cycleID := c.Param("cycleID")

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), cycleID)
	if err != nil {
		logger.Warn("Failed to list expenses", slog.String("cycle_id", cycleID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Expense not found"
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		logger.Warn("Failed to delete expense", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}
