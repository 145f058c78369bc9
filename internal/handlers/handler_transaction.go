package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/middleware"
)

// transactionHandler handles HTTP requests for daily cash movements and
// miscellaneous expenses.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes for credits, debits and misc expenses.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	credits := rg.Group("/credits")
	{
		credits.POST("", h.recordCredit)
		credits.GET("", h.listCredits)
	}

	debits := rg.Group("/debits")
	{
		debits.POST("", h.recordDebit)
		debits.GET("", h.listDebits)
	}

	misc := rg.Group("/misc-expenses")
	{
		misc.POST("", h.recordMiscExpense)
		misc.GET("", h.listMiscExpenses)
	}
}

// recordCredit godoc
// @Summary Record an incoming cash movement
// @Description Persists a credit. Depending on the category label this also credits the member's savings balance, mirrors into the passbook, or books an EMI/interest/fine against the matching loan.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   credit body dto.CreateCreditRequest true "Credit details"
// @Success 201 {object} dto.CashMovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to record credit"
// @Router /credits [post]
func (h *transactionHandler) recordCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCreditRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	movement, err := h.transactionService.RecordCredit(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, err, "Failed to record credit")
		return
	}

	logger.Info("Credit recorded",
		slog.String("transaction_id", movement.TransactionID),
		slog.String("account_no", movement.AccountNo),
		slog.String("category", movement.Category))
	c.JSON(http.StatusCreated, dto.ToCashMovementResponse(movement))
}

// listCredits godoc
// @Summary List credit movements
// @Tags transactions
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 500 {object} map[string]string "Failed to list credits"
// @Router /credits [get]
func (h *transactionHandler) listCredits(c *gin.Context) {
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	movements, err := h.transactionService.ListCredits(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list credits")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements))
}

// recordDebit godoc
// @Summary Record an outgoing cash movement
// @Description Persists a debit, reduces the member's savings balance and mirrors "Member Closed" debits into the passbook.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   debit body dto.CreateDebitRequest true "Debit details"
// @Success 201 {object} dto.CashMovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to record debit"
// @Router /debits [post]
func (h *transactionHandler) recordDebit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebitRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	movement, err := h.transactionService.RecordDebit(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, err, "Failed to record debit")
		return
	}

	logger.Info("Debit recorded",
		slog.String("transaction_id", movement.TransactionID),
		slog.String("account_no", movement.AccountNo),
		slog.String("category", movement.Category))
	c.JSON(http.StatusCreated, dto.ToCashMovementResponse(movement))
}

// listDebits godoc
// @Summary List debit movements
// @Tags transactions
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 500 {object} map[string]string "Failed to list debits"
// @Router /debits [get]
func (h *transactionHandler) listDebits(c *gin.Context) {
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	movements, err := h.transactionService.ListDebits(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list debits")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements))
}

// recordMiscExpense godoc
// @Summary Record a miscellaneous expense
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateMiscExpenseRequest true "Expense details"
// @Success 201 {object} dto.MiscExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /misc-expenses [post]
func (h *transactionHandler) recordMiscExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMiscExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	expense, err := h.transactionService.RecordMiscExpense(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, err, "Failed to record expense")
		return
	}

	logger.Info("Misc expense recorded", slog.String("misc_id", expense.MiscID), slog.String("head", expense.Head))
	c.JSON(http.StatusCreated, dto.ToMiscExpenseResponse(expense))
}

// listMiscExpenses godoc
// @Summary List miscellaneous expenses
// @Tags transactions
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListMiscExpensesResponse
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /misc-expenses [get]
func (h *transactionHandler) listMiscExpenses(c *gin.Context) {
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	expenses, err := h.transactionService.ListMiscExpenses(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMiscExpensesResponse(expenses))
}
