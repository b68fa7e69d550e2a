package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/khoahotran/professional-ladder/internal/application/usecase/auth"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

type AuthHandler struct {
	authUseCase *authUC.AuthUseCase
	logger      logger.Logger
}

func NewAuthHandler(uc *authUC.AuthUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: uc,
		logger:      log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for login", err))
		return
	}

	output, err := h.authUseCase.ExecuteLogin(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toTokenResponse(output))
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for signup", err))
		return
	}

	output, err := h.authUseCase.ExecuteSignup(c.Request.Context(), authUC.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toTokenResponse(output))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	if err := h.authUseCase.ExecuteLogout(c.Request.Context(), authUC.LogoutInput{SessionID: s.ID}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toTokenResponse(output *authUC.LoginOutput) TokenResponse {
	resp := TokenResponse{AccessToken: output.AccessToken, Profile: ToProfileDTO(output.Profile)}
	if output.LoadFailure != nil {
		resp.Warning = "stored profile could not be read; saving will replace it"
	}
	return resp
}
