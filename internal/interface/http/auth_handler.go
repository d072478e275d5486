package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-accounts/internal/application"
	"user-accounts/pkg/response"
	"user-accounts/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// PostAuthentication handles POST /authentications (login).
func (h *AuthHandler) PostAuthentication(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("invalid login payload")
		}
		response.Fail(c, http.StatusBadRequest, "harus mengirimkan username dan password")
		return
	}

	auth, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, auth)
}

// PutAuthentication handles PUT /authentications (access token refresh).
func (h *AuthHandler) PutAuthentication(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "harus mengirimkan token refresh")
		return
	}

	access, err := h.Svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accessToken": access})
}

// DeleteAuthentication handles DELETE /authentications (logout).
func (h *AuthHandler) DeleteAuthentication(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "harus mengirimkan token refresh")
		return
	}

	if err := h.Svc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
