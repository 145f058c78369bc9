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

// userHandler handles HTTP requests for operator accounts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerAuthRoutes registers the public credential check route.
func registerAuthRoutes(r *gin.Engine, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
	}
}

// registerSettingsRoutes registers the operator settings routes.
func registerSettingsRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	settings := rg.Group("/settings")
	{
		settings.POST("/change-password", h.changePassword)
	}
}

// login godoc
// @Summary Verify operator credentials
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Operator credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid username or password"
// @Failure 500 {object} map[string]string "Failed to verify credentials"
// @Router /auth/login [post]
func (h *userHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userService.VerifyPassword(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			logger.Warn("Login rejected", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		respondError(c, err, "Failed to verify credentials")
		return
	}

	logger.Info("Login accepted", slog.String("username", req.Username))
	c.JSON(http.StatusOK, gin.H{"status": "ok", "username": req.Username})
}

// changePassword godoc
// @Summary Change an operator's password
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   change body dto.ChangePasswordRequest true "Password change details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid username or password"
// @Failure 500 {object} map[string]string "Failed to change password"
// @Router /settings/change-password [post]
func (h *userHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), req); err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			logger.Warn("Password change rejected", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		respondError(c, err, "Failed to change password")
		return
	}

	logger.Info("Password changed", slog.String("username", req.Username))
	c.JSON(http.StatusOK, gin.H{"status": "password changed"})
}
