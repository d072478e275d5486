package repository

import (
	"context"

	"user-accounts/internal/domain"
	"user-accounts/internal/domain/entity"
)

// UserRepository defines the persistence capabilities the user domain needs.
// Lookup and delete misses are signalled with domain.ClientError values; no
// other error channel exists for "not found".
type UserRepository interface {
	// VerifyAvailableUsername fails with an invariant error when a row with
	// the username already exists.
	VerifyAvailableUsername(ctx context.Context, username string) error
	AddUser(ctx context.Context, user *entity.RegisterUser) (*entity.RegisteredUser, error)
	UpdateUser(ctx context.Context, id string, user *entity.RegisterUser) (*entity.RegisteredUser, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.RegisteredUser, error)
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIdByUsername(ctx context.Context, username string) (string, error)
	GetRoleByUsername(ctx context.Context, username string) (string, error)
	DeleteUserById(ctx context.Context, id string) error
}

// UnimplementedUserRepository fails every capability with a NotImplementedError.
// Partial test doubles embed it so a method they forgot to override is caught
// loudly instead of silently succeeding.
type UnimplementedUserRepository struct{}

func (UnimplementedUserRepository) VerifyAvailableUsername(context.Context, string) error {
	return &domain.NotImplementedError{Method: "VerifyAvailableUsername"}
}

func (UnimplementedUserRepository) AddUser(context.Context, *entity.RegisterUser) (*entity.RegisteredUser, error) {
	return nil, &domain.NotImplementedError{Method: "AddUser"}
}

func (UnimplementedUserRepository) UpdateUser(context.Context, string, *entity.RegisterUser) (*entity.RegisteredUser, error) {
	return nil, &domain.NotImplementedError{Method: "UpdateUser"}
}

func (UnimplementedUserRepository) GetUserByUsername(context.Context, string) (*entity.RegisteredUser, error) {
	return nil, &domain.NotImplementedError{Method: "GetUserByUsername"}
}

func (UnimplementedUserRepository) GetPasswordByUsername(context.Context, string) (string, error) {
	return "", &domain.NotImplementedError{Method: "GetPasswordByUsername"}
}

func (UnimplementedUserRepository) GetIdByUsername(context.Context, string) (string, error) {
	return "", &domain.NotImplementedError{Method: "GetIdByUsername"}
}

func (UnimplementedUserRepository) GetRoleByUsername(context.Context, string) (string, error) {
	return "", &domain.NotImplementedError{Method: "GetRoleByUsername"}
}

func (UnimplementedUserRepository) DeleteUserById(context.Context, string) error {
	return &domain.NotImplementedError{Method: "DeleteUserById"}
}

var _ UserRepository = (*UnimplementedUserRepository)(nil)
