package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"litrevu/internal/application/user/usecases"
	"litrevu/internal/infrastructure/auth"
	"litrevu/internal/shared/config"
	"litrevu/internal/shared/logger"
	"litrevu/internal/shared/utils"
)

type AuthHandler struct {
	registerUC     usecases.RegisterUserExecutor
	authenticateUC usecases.AuthenticateUserExecutor
	sessions       *auth.SessionService
	authConfig     *config.AuthConfig
	logger         logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	authenticateUC usecases.AuthenticateUserExecutor,
	sessions *auth.SessionService,
	authConfig *config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		registerUC:     registerUC,
		authenticateUC: authenticateUC,
		sessions:       sessions,
		authConfig:     authConfig,
		logger:         logger.NewLogger(),
	}
}

// ShowLogin handles GET /. A valid session skips straight to the feed.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if token := utils.GetSessionToken(c); token != "" {
		if _, err := h.sessions.Verify(token); err == nil {
			utils.RedirectResponse(c, "/home/")
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":  "login",
		"flash": utils.ConsumeFlash(c, h.authConfig.Cookie),
	})
}

// Login handles POST /.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid login form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormErrorMessage(err, "username and password are required"))
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.authConfig.Cookie, result.Token, h.sessions.MaxAgeSeconds())
	utils.RedirectResponse(c, "/home/")
}

// ShowSignup handles GET /signup/.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"page":  "signup",
		"flash": utils.ConsumeFlash(c, h.authConfig.Cookie),
	})
}

// Signup handles POST /signup/. A fresh account is logged in right away.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warnw("invalid signup form", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.FormErrorMessage(err, "username and both password fields are required"))
		return
	}

	if req.Password != req.PasswordConfirm {
		utils.ErrorResponse(c, http.StatusBadRequest, "the two password fields do not match")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.authConfig.Cookie, result.Token, h.sessions.MaxAgeSeconds())
	utils.RedirectResponse(c, "/home/")
}

// Logout handles GET /logout/.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.authConfig.Cookie)
	utils.RedirectResponse(c, "/")
}
