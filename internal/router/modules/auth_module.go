package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "user-accounts/internal/interface/http"
	"user-accounts/internal/interface/middleware"
)

// AuthModule wires the authentication handlers into routes. Login is rate
// limited per IP; private-range clients bypass the limiter.
type AuthModule struct {
	Handler    *handlers.AuthHandler
	Redis      *redis.Client
	LoginLimit int
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, loginLimit int) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb, LoginLimit: loginLimit}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.Redis, m.LoginLimit, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/authentications", loginLimiter, m.Handler.PostAuthentication)
	rg.PUT("/authentications", m.Handler.PutAuthentication)
	rg.DELETE("/authentications", m.Handler.DeleteAuthentication)
}
