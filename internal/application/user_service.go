package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"user-accounts/internal/domain/entity"
	repo "user-accounts/internal/domain/repository"
)

// UserService orchestrates the user lifecycle use cases. It is stateless and
// re-entrant; all collaborators are injected so tests can substitute them.
type UserService struct {
	Repo   repo.UserRepository
	Hasher PasswordHash
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, hasher PasswordHash, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Hasher: hasher, Logger: logger}
}

// AddUser validates the raw payload, checks username availability, hashes the
// password, and persists the user. Availability is checked before hashing so
// a taken username fails early without wasted bcrypt work.
func (s *UserService) AddUser(ctx context.Context, payload map[string]any) (*entity.RegisteredUser, error) {
	user, err := entity.NewRegisterUser(payload)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.VerifyAvailableUsername(ctx, user.Username); err != nil {
		return nil, err
	}

	digest, err := s.Hasher.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = digest

	registered, err := s.Repo.AddUser(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"id": registered.ID, "username": registered.Username}).Info("user registered")
	}
	return registered, nil
}

// UpdateUser validates the raw payload, hashes the password, and rewrites the
// row identified by id.
func (s *UserService) UpdateUser(ctx context.Context, id string, payload map[string]any) (*entity.RegisteredUser, error) {
	user, err := entity.NewRegisterUser(payload)
	if err != nil {
		return nil, err
	}

	digest, err := s.Hasher.Hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = digest

	return s.Repo.UpdateUser(ctx, id, user)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*entity.RegisteredUser, error) {
	return s.Repo.GetUserByUsername(ctx, username)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.Repo.DeleteUserById(ctx, id)
}
