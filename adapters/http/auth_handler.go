package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimasadrian/portfolio/internal/application/usecase/auth"
	"github.com/dimasadrian/portfolio/pkg/apperror"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type AuthHandler struct {
	loginUseCase   *auth.LoginUseCase
	logoutUseCase  *auth.LogoutUseCase
	sessionUseCase *auth.SessionUseCase
	logger         logger.Logger
}

func NewAuthHandler(loginUC *auth.LoginUseCase, logoutUC *auth.LogoutUseCase, sessionUC *auth.SessionUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase:   loginUC,
		logoutUseCase:  logoutUC,
		sessionUseCase: sessionUC,
		logger:         log,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": output.AccessToken,
		"user_id":      output.UserID.String(),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := GetClaimsFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("claims not found in context"))
		return
	}
	if err := h.logoutUseCase.Execute(c.Request.Context(), claims); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out", "redirect": LoginPath})
}

// Session answers the dashboard's gate check.
func (h *AuthHandler) Session(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.sessionUseCase.Execute(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"owner_id": ownerID.String(),
		"email":    output.User.Email,
		"profile":  ToProfileDTO(output.Profile),
	})
}
