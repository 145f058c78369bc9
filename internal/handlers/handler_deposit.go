package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/core/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/middleware"
)

// depositHandler handles HTTP requests for fixed and recurring deposits.
type depositHandler struct {
	depositService portssvc.DepositSvcFacade
}

func newDepositHandler(ds portssvc.DepositSvcFacade) *depositHandler {
	return &depositHandler{depositService: ds}
}

// registerDepositRoutes registers routes for fixed and recurring deposits.
func registerDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade) {
	h := newDepositHandler(depositService)

	fds := rg.Group("/fixed-deposits")
	{
		fds.POST("", h.openFixedDeposit)
		fds.GET("", h.listFixedDeposits)
		fds.POST("/:fdID/close", h.closeFixedDeposit)
	}

	rds := rg.Group("/recurring-deposits")
	{
		rds.POST("", h.openRecurringDeposit)
		rds.GET("", h.listRecurringDeposits)
		rds.POST("/:rdID/close", h.closeRecurringDeposit)
		rds.GET("/:rdID/installments", h.listRDInstallments)
		rds.POST("/:rdID/installments", h.recordRDInstallment)
	}
}

// openFixedDeposit godoc
// @Summary Open a fixed deposit
// @Description Creates a fixed deposit; the maturity date and amount are derived from the period and the simple interest rate.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   deposit body dto.CreateFixedDepositRequest true "Deposit details"
// @Success 201 {object} dto.FixedDepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to open fixed deposit"
// @Router /fixed-deposits [post]
func (h *depositHandler) openFixedDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFixedDepositRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	fd, err := h.depositService.OpenFixedDeposit(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, err, "Failed to open fixed deposit")
		return
	}

	logger.Info("Fixed deposit opened", slog.String("fd_id", fd.FDID), slog.String("account_no", fd.AccountNo))
	c.JSON(http.StatusCreated, dto.ToFixedDepositResponse(fd))
}

// closeFixedDeposit godoc
// @Summary Close a fixed deposit
// @Description Closes the deposit and pays out the principal plus any interest above it, debiting the member's savings balance.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   fdID path string true "Fixed deposit ID"
// @Param   close body dto.CloseFixedDepositRequest true "Close details"
// @Success 200 {object} dto.FixedDepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Deposit already closed"
// @Failure 500 {object} map[string]string "Failed to close fixed deposit"
// @Router /fixed-deposits/{fdID}/close [post]
func (h *depositHandler) closeFixedDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fdID := c.Param("fdID")
	var req dto.CloseFixedDepositRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	fd, err := h.depositService.CloseFixedDeposit(c.Request.Context(), fdID, req, operator)
	if err != nil {
		if errors.Is(err, services.ErrDepositAlreadyClosed) {
			logger.Warn("Fixed deposit already closed", slog.String("fd_id", fdID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "Failed to close fixed deposit")
		return
	}

	logger.Info("Fixed deposit closed", slog.String("fd_id", fdID), slog.String("operator", operator))
	c.JSON(http.StatusOK, dto.ToFixedDepositResponse(fd))
}

// listFixedDeposits godoc
// @Summary List fixed deposits
// @Tags deposits
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListFixedDepositsResponse
// @Failure 500 {object} map[string]string "Failed to list fixed deposits"
// @Router /fixed-deposits [get]
func (h *depositHandler) listFixedDeposits(c *gin.Context) {
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	fds, err := h.depositService.ListFixedDeposits(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list fixed deposits")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFixedDepositsResponse(fds))
}

// openRecurringDeposit godoc
// @Summary Open a recurring deposit
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   deposit body dto.CreateRecurringDepositRequest true "Deposit details"
// @Success 201 {object} dto.RecurringDepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to open recurring deposit"
// @Router /recurring-deposits [post]
func (h *depositHandler) openRecurringDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurringDepositRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	rd, err := h.depositService.OpenRecurringDeposit(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, err, "Failed to open recurring deposit")
		return
	}

	logger.Info("Recurring deposit opened", slog.String("rd_id", rd.RDID), slog.String("account_no", rd.AccountNo))
	c.JSON(http.StatusCreated, dto.ToRecurringDepositResponse(rd))
}

// closeRecurringDeposit godoc
// @Summary Close a recurring deposit
// @Description Closes the deposit with principal equal to the scheduled installment total, paying out principal plus any interest above it.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   rdID path string true "Recurring deposit ID"
// @Param   close body dto.CloseRecurringDepositRequest true "Close details"
// @Success 200 {object} dto.RecurringDepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Deposit already closed"
// @Failure 500 {object} map[string]string "Failed to close recurring deposit"
// @Router /recurring-deposits/{rdID}/close [post]
func (h *depositHandler) closeRecurringDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rdID := c.Param("rdID")
	var req dto.CloseRecurringDepositRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	rd, err := h.depositService.CloseRecurringDeposit(c.Request.Context(), rdID, req, operator)
	if err != nil {
		if errors.Is(err, services.ErrDepositAlreadyClosed) {
			logger.Warn("Recurring deposit already closed", slog.String("rd_id", rdID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "Failed to close recurring deposit")
		return
	}

	logger.Info("Recurring deposit closed", slog.String("rd_id", rdID), slog.String("operator", operator))
	c.JSON(http.StatusOK, dto.ToRecurringDepositResponse(rd))
}

// listRecurringDeposits godoc
// @Summary List recurring deposits
// @Tags deposits
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD)"
// @Param   toDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListRecurringDepositsResponse
// @Failure 500 {object} map[string]string "Failed to list recurring deposits"
// @Router /recurring-deposits [get]
func (h *depositHandler) listRecurringDeposits(c *gin.Context) {
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	rds, err := h.depositService.ListRecurringDeposits(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list recurring deposits")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecurringDepositsResponse(rds))
}

// recordRDInstallment godoc
// @Summary Record a recurring deposit installment
// @Description Records the next numbered installment. The amount falls back to the deposit's scheduled installment amount when absent.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   rdID path string true "Recurring deposit ID"
// @Param   installment body dto.CreateRDInstallmentRequest true "Installment details"
// @Success 201 {object} dto.RDInstallmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 409 {object} map[string]string "Deposit already closed"
// @Failure 500 {object} map[string]string "Failed to record installment"
// @Router /recurring-deposits/{rdID}/installments [post]
func (h *depositHandler) recordRDInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rdID := c.Param("rdID")
	var req dto.CreateRDInstallmentRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	installment, err := h.depositService.RecordRDInstallment(c.Request.Context(), rdID, req, operator)
	if err != nil {
		if errors.Is(err, services.ErrDepositAlreadyClosed) {
			logger.Warn("Installment against closed deposit", slog.String("rd_id", rdID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "Failed to record installment")
		return
	}

	logger.Info("RD installment recorded", slog.String("rd_id", rdID), slog.Int("installment_no", installment.InstallmentNo))
	c.JSON(http.StatusCreated, dto.ToRDInstallmentResponse(installment))
}

// listRDInstallments godoc
// @Summary List the installments of a recurring deposit
// @Tags deposits
// @Produce  json
// @Param   rdID path string true "Recurring deposit ID"
// @Success 200 {object} dto.ListRDInstallmentsResponse
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 500 {object} map[string]string "Failed to list installments"
// @Router /recurring-deposits/{rdID}/installments [get]
func (h *depositHandler) listRDInstallments(c *gin.Context) {
	rdID := c.Param("rdID")

	installments, err := h.depositService.ListRDInstallments(c.Request.Context(), rdID)
	if err != nil {
		respondError(c, err, "Failed to list installments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListRDInstallmentsResponse(installments))
}
