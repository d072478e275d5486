package router

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"user-accounts/config"
	"user-accounts/internal/application"
	pginfra "user-accounts/internal/infrastructure/postgres"
	"user-accounts/internal/infrastructure/redisstore"
	handlers "user-accounts/internal/interface/http"
	"user-accounts/internal/router/modules"
	"user-accounts/pkg/helpers"
)

// Deps are the infrastructure singletons built by the composition root.
// Modules receive concrete collaborators through constructors; there is no
// name-based container.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	JWT    *helpers.JWTManager
}

// InitModules builds every feature module and registers it with the router
// registry. Called once during startup.
func InitModules(r *Registry, deps Deps) {
	repo := pginfra.NewUserRepository(deps.Pool, uuid.NewString)
	hasher := helpers.NewBcryptHash()

	userService := application.NewUserService(repo, hasher, deps.Logger)
	userHandler := handlers.NewUserHandler(userService, deps.Logger)
	r.Add(modules.NewUserModule(userHandler, deps.JWT))

	tokenStore := redisstore.NewRefreshTokenStore(deps.Redis)
	authService := application.NewAuthService(repo, hasher, deps.JWT, tokenStore, deps.Logger)
	authHandler := handlers.NewAuthHandler(authService, deps.Logger)
	r.Add(modules.NewAuthModule(authHandler, deps.Redis, deps.Cfg.LoginRateLimit))
}
