package modules

import (
	"github.com/gin-gonic/gin"

	handlers "user-accounts/internal/interface/http"
	"user-accounts/internal/interface/middleware"
	"user-accounts/pkg/helpers"
)

// UserModule wires the user CRUD handlers into routes.
// Public: POST /users, PUT /users/:id
// Protected: GET /users/:username (role User), DELETE /users/:id (role Admin)
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.PostUser)
	rg.PUT("/users/:id", m.Handler.PutUserById)

	protected := rg.Group("/")
	protected.Use(middleware.BearerAuth(m.JWT))
	{
		protected.GET("/users/:username", middleware.RequireRole("User"), m.Handler.GetUserByUsername)
		protected.DELETE("/users/:id", middleware.RequireRole("Admin"), m.Handler.DeleteUserById)
	}
}
