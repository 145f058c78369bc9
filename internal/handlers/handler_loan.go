package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/core/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/middleware"
)

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.GET("/recent", h.listRecentLoans)
		loans.GET("/:loanID", h.getLoan)
		loans.GET("/:loanID/outstanding", h.getLoanOutstanding)
		loans.GET("/:loanID/statement", h.getLoanStatement)
	}
}

// createLoan godoc
// @Summary Sanction a new loan
// @Description Creates a loan and records the matching "Loan Given" debit movement. A member may hold only one active loan per category.
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 409 {object} map[string]string "Active loan of this category exists"
// @Failure 500 {object} map[string]string "Failed to sanction loan"
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	loan, err := h.loanService.CreateLoan(c.Request.Context(), req, operator)
	if err != nil {
		if errors.Is(err, services.ErrActiveLoanExists) {
			logger.Warn("Active loan blocks sanction", slog.String("account_no", req.AccountNo), slog.String("category", req.Category))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "Failed to sanction loan")
		return
	}

	logger.Info("Loan sanctioned",
		slog.String("loan_id", loan.LoanID),
		slog.String("account_no", loan.AccountNo),
		slog.String("category", string(loan.Category)))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// getLoan godoc
// @Summary Get a loan by ID
// @Tags loans
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to retrieve loan"
// @Router /loans/{loanID} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	loanID := c.Param("loanID")

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, err, "Failed to retrieve loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans
// @Tags loans
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListLoansResponse
// @Failure 500 {object} map[string]string "Failed to list loans"
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	loans, err := h.loanService.ListLoans(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLoansResponse(loans))
}

// listRecentLoans godoc
// @Summary List the most recently sanctioned loans
// @Tags loans
// @Produce  json
// @Param   limit query int false "Result cap" default(10)
// @Success 200 {object} dto.ListLoansResponse
// @Failure 500 {object} map[string]string "Failed to list loans"
// @Router /loans/recent [get]
func (h *loanHandler) listRecentLoans(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	loans, err := h.loanService.ListRecentLoans(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLoansResponse(loans))
}

// getLoanOutstanding godoc
// @Summary Get the outstanding principal of a loan
// @Description Outstanding is the principal minus the EMI payments received, floored at zero.
// @Tags loans
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {object} dto.LoanOutstandingResponse
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to compute outstanding"
// @Router /loans/{loanID}/outstanding [get]
func (h *loanHandler) getLoanOutstanding(c *gin.Context) {
	loanID := c.Param("loanID")

	outstanding, err := h.loanService.GetLoanOutstanding(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, err, "Failed to compute outstanding")
		return
	}

	c.JSON(http.StatusOK, outstanding)
}

// getLoanStatement godoc
// @Summary Get a loan's replayed statement
// @Description Replays the disbursal and every payment in chronological order and returns the events most recent first.
// @Tags loans
// @Produce  json
// @Param   loanID path string true "Loan ID"
// @Success 200 {object} dto.LoanStatementResponse
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to build loan statement"
// @Router /loans/{loanID}/statement [get]
func (h *loanHandler) getLoanStatement(c *gin.Context) {
	loanID := c.Param("loanID")

	statement, err := h.loanService.GetLoanStatement(c.Request.Context(), loanID)
	if err != nil {
		respondError(c, err, "Failed to build loan statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanStatementResponse(statement))
}
