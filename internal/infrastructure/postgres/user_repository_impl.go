package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"user-accounts/internal/domain"
	"user-accounts/internal/domain/entity"
	"user-accounts/internal/domain/repository"
)

// IDGenerator produces the unprefixed part of a new user id.
type IDGenerator func() string

// UserRepository binds the user repository contract to Postgres. Every method
// is a single parameterized statement; a zero row count is the only signal
// used to raise not-found failures.
//
// VerifyAvailableUsername and AddUser are separate statements, so two
// concurrent registrations for the same username can both pass the check.
// The schema deliberately carries no unique constraint so the failure surface
// stays the availability pre-check.
type UserRepository struct {
	pool       *pgxpool.Pool
	generateID IDGenerator
}

func NewUserRepository(pool *pgxpool.Pool, generateID IDGenerator) *UserRepository {
	return &UserRepository{pool: pool, generateID: generateID}
}

func (r *UserRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	var found string
	err := r.pool.QueryRow(ctx, `
		SELECT username FROM users WHERE username = $1
	`, username).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return domain.NewInvariantError("username tidak tersedia")
}

func (r *UserRepository) AddUser(ctx context.Context, user *entity.RegisterUser) (*entity.RegisteredUser, error) {
	id := "user-" + r.generateID()

	registered := &entity.RegisteredUser{}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, username, password, fullname, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, fullname, role
	`, id, user.Username, user.Password, user.Fullname, user.Role).
		Scan(&registered.ID, &registered.Username, &registered.Fullname, &registered.Role)
	if err != nil {
		return nil, err
	}
	return registered, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, user *entity.RegisterUser) (*entity.RegisteredUser, error) {
	registered := &entity.RegisteredUser{}
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET username = $1, password = $2, fullname = $3, role = $4
		WHERE id = $5
		RETURNING id, username, fullname, role
	`, user.Username, user.Password, user.Fullname, user.Role, id).
		Scan(&registered.ID, &registered.Username, &registered.Fullname, &registered.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewInvariantError("Gagal memperbarui user. Id tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	return registered, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.RegisteredUser, error) {
	user := &entity.RegisteredUser{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, fullname, role FROM users WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.Fullname, &user.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewNotFoundError("username tidak tersedia")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	var password string
	err := r.pool.QueryRow(ctx, `
		SELECT password FROM users WHERE username = $1
	`, username).Scan(&password)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.NewInvariantError("username tidak ditemukan")
	}
	if err != nil {
		return "", err
	}
	return password, nil
}

func (r *UserRepository) GetIdByUsername(ctx context.Context, username string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		SELECT id FROM users WHERE username = $1
	`, username).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.NewInvariantError("user tidak ditemukan")
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *UserRepository) GetRoleByUsername(ctx context.Context, username string) (string, error) {
	var role string
	err := r.pool.QueryRow(ctx, `
		SELECT role FROM users WHERE username = $1
	`, username).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.NewInvariantError("user tidak ditemukan")
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (r *UserRepository) DeleteUserById(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM users WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("Gagal menghapus user. Id tidak ditemukan")
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
