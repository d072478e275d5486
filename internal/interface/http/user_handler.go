package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-accounts/internal/application"
	"user-accounts/internal/domain"
	"user-accounts/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// PostUser handles POST /users. The payload is bound as a raw map so the
// entity can distinguish missing properties from type mismatches.
func (h *UserHandler) PostUser(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, h.Logger, domain.NewValidationError(domain.ErrRegisterUserMissingProperty))
		return
	}

	addedUser, err := h.Svc.AddUser(c.Request.Context(), payload)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"addedUser": addedUser})
}

// PutUserById handles PUT /users/:id.
func (h *UserHandler) PutUserById(c *gin.Context) {
	id := c.Param("id")

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, h.Logger, domain.NewValidationError(domain.ErrRegisterUserMissingProperty))
		return
	}

	updatedUser, err := h.Svc.UpdateUser(c.Request.Context(), id, payload)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"updatedUser": updatedUser})
}

// GetUserByUsername handles GET /users/:username.
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.Svc.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// DeleteUserById handles DELETE /users/:id.
func (h *UserHandler) DeleteUserById(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, nil)
}
