package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
)

// reportingHandler handles HTTP requests for reports and the dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes for reports and the dashboard.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.getMonthlyReport)
		reports.GET("/dashboard", h.getDashboard)
	}
}

// getMonthlyReport godoc
// @Summary Get the monthly report
// @Description Buckets one calendar month's cash movements and misc expenses into the fixed weekly windows per category head.
// @Tags reports
// @Produce  json
// @Param   month query int true "Month (1-12)"
// @Param   year query int true "Year"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} map[string]string "Invalid month or year"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	var params dto.MonthlyReportParams
	if !bindQuery(c, &params) {
		return
	}

	report, err := h.reportingService.GetMonthlyReport(c.Request.Context(), params.Month, params.Year)
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}

// getDashboard godoc
// @Summary Get the dashboard totals
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to compute totals"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	totals, err := h.reportingService.GetDashboardTotals(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(totals))
}
