package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurukosh/guru_finance_app/internal/apperrors"
	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/gurukosh/guru_finance_app/internal/dto"
	"github.com/gurukosh/guru_finance_app/internal/middleware"
)

// memberHandler handles HTTP requests related to member accounts.
type memberHandler struct {
	memberService    portssvc.MemberSvcFacade
	reportingService portssvc.ReportingService
}

func newMemberHandler(ms portssvc.MemberSvcFacade, rs portssvc.ReportingService) *memberHandler {
	return &memberHandler{
		memberService:    ms,
		reportingService: rs,
	}
}

// registerMemberRoutes registers routes related to member accounts.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade, reportingService portssvc.ReportingService) {
	h := newMemberHandler(memberService, reportingService)

	members := rg.Group("/members")
	{
		members.POST("", h.openMember)
		members.GET("", h.listMembers)
		members.GET("/search", h.searchMembers)
		members.GET("/:accountNo", h.getMember)
		members.PUT("/:accountNo", h.updateMember)
		members.GET("/:accountNo/summary", h.getMemberSummary)
		members.GET("/:accountNo/statement", h.getMemberStatement)
	}
}

// openMember godoc
// @Summary Open a new member account
// @Description Creates a member account. The account number is assigned automatically when absent; an opening balance above zero is credited to the savings balance and mirrored into the passbook.
// @Tags members
// @Accept  json
// @Produce  json
// @Param   member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Account number already taken"
// @Failure 500 {object} map[string]string "Failed to open member"
// @Router /members [post]
func (h *memberHandler) openMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	logger.Info("Received request to open member", slog.String("name", req.Name), slog.String("operator", operator))

	member, err := h.memberService.OpenMember(c.Request.Context(), req, operator)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Account number already taken", slog.String("account_no", req.AccountNo))
			c.JSON(http.StatusConflict, gin.H{"error": "Account number '" + req.AccountNo + "' already exists"})
			return
		}
		respondError(c, err, "Failed to open member")
		return
	}

	logger.Info("Member opened", slog.String("account_no", member.AccountNo))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// getMember godoc
// @Summary Get a member by account number
// @Tags members
// @Produce  json
// @Param   accountNo path string true "Account number"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to retrieve member"
// @Router /members/{accountNo} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	accountNo := c.Param("accountNo")

	member, err := h.memberService.GetMemberByAccountNo(c.Request.Context(), accountNo)
	if err != nil {
		respondError(c, err, "Failed to retrieve member")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListMembersResponse
// @Failure 500 {object} map[string]string "Failed to list members"
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	var params dto.ListMembersParams
	if !bindQuery(c, &params) {
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// searchMembers godoc
// @Summary Search members
// @Description Finds members whose account number, name or mobile matches the query.
// @Tags members
// @Produce  json
// @Param   q query string true "Search query"
// @Param   limit query int false "Result cap" default(20)
// @Success 200 {object} dto.ListMembersResponse
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 500 {object} map[string]string "Failed to search members"
// @Router /members/search [get]
func (h *memberHandler) searchMembers(c *gin.Context) {
	var params dto.SearchMembersParams
	if !bindQuery(c, &params) {
		return
	}

	members, err := h.memberService.SearchMembers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to search members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// updateMember godoc
// @Summary Update a member's contact details
// @Tags members
// @Accept  json
// @Produce  json
// @Param   accountNo path string true "Account number"
// @Param   member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to update member"
// @Router /members/{accountNo} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNo := c.Param("accountNo")
	var req dto.UpdateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	operator := middleware.GetOperatorFromContext(c)
	member, err := h.memberService.UpdateMember(c.Request.Context(), accountNo, req, operator)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}

	logger.Info("Member updated", slog.String("account_no", accountNo), slog.String("operator", operator))
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// getMemberSummary godoc
// @Summary Get a member's aggregate position
// @Description Returns the savings balance together with loan count, loan outstanding and open deposit counts.
// @Tags members
// @Produce  json
// @Param   accountNo path string true "Account number"
// @Success 200 {object} dto.MemberSummaryResponse
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to build member summary"
// @Router /members/{accountNo}/summary [get]
func (h *memberHandler) getMemberSummary(c *gin.Context) {
	accountNo := c.Param("accountNo")

	member, summary, err := h.memberService.GetMemberSummary(c.Request.Context(), accountNo)
	if err != nil {
		respondError(c, err, "Failed to build member summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberSummaryResponse(member, summary))
}

// getMemberStatement godoc
// @Summary Get a member's passbook statement
// @Description Replays the member's passbook entries into a running-balance statement starting at the opening balance.
// @Tags members
// @Produce  json
// @Param   accountNo path string true "Account number"
// @Success 200 {object} dto.AccountStatementResponse
// @Failure 404 {object} map[string]string "Member not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /members/{accountNo}/statement [get]
func (h *memberHandler) getMemberStatement(c *gin.Context) {
	accountNo := c.Param("accountNo")

	statement, err := h.reportingService.GetAccountStatement(c.Request.Context(), accountNo)
	if err != nil {
		respondError(c, err, "Failed to build statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountStatementResponse(statement))
}
