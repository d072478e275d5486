package application_test

import (
	"context"
	"sync"
	"time"

	"user-accounts/internal/domain"
	"user-accounts/internal/domain/entity"
	"user-accounts/internal/domain/repository"
)

// stubRepo overrides individual capabilities with function fields; anything
// left nil falls back to the unimplemented base.
type stubRepo struct {
	repository.UnimplementedUserRepository

	verifyAvailableUsername func(ctx context.Context, username string) error
	addUser                 func(ctx context.Context, user *entity.RegisterUser) (*entity.RegisteredUser, error)
	updateUser              func(ctx context.Context, id string, user *entity.RegisterUser) (*entity.RegisteredUser, error)
	getUserByUsername       func(ctx context.Context, username string) (*entity.RegisteredUser, error)
	getPasswordByUsername   func(ctx context.Context, username string) (string, error)
	getIdByUsername         func(ctx context.Context, username string) (string, error)
	getRoleByUsername       func(ctx context.Context, username string) (string, error)
	deleteUserById          func(ctx context.Context, id string) error
}

func (s *stubRepo) VerifyAvailableUsername(ctx context.Context, username string) error {
	if s.verifyAvailableUsername != nil {
		return s.verifyAvailableUsername(ctx, username)
	}
	return s.UnimplementedUserRepository.VerifyAvailableUsername(ctx, username)
}

func (s *stubRepo) AddUser(ctx context.Context, user *entity.RegisterUser) (*entity.RegisteredUser, error) {
	if s.addUser != nil {
		return s.addUser(ctx, user)
	}
	return s.UnimplementedUserRepository.AddUser(ctx, user)
}

func (s *stubRepo) UpdateUser(ctx context.Context, id string, user *entity.RegisterUser) (*entity.RegisteredUser, error) {
	if s.updateUser != nil {
		return s.updateUser(ctx, id, user)
	}
	return s.UnimplementedUserRepository.UpdateUser(ctx, id, user)
}

func (s *stubRepo) GetUserByUsername(ctx context.Context, username string) (*entity.RegisteredUser, error) {
	if s.getUserByUsername != nil {
		return s.getUserByUsername(ctx, username)
	}
	return s.UnimplementedUserRepository.GetUserByUsername(ctx, username)
}

func (s *stubRepo) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	if s.getPasswordByUsername != nil {
		return s.getPasswordByUsername(ctx, username)
	}
	return s.UnimplementedUserRepository.GetPasswordByUsername(ctx, username)
}

func (s *stubRepo) GetIdByUsername(ctx context.Context, username string) (string, error) {
	if s.getIdByUsername != nil {
		return s.getIdByUsername(ctx, username)
	}
	return s.UnimplementedUserRepository.GetIdByUsername(ctx, username)
}

func (s *stubRepo) GetRoleByUsername(ctx context.Context, username string) (string, error) {
	if s.getRoleByUsername != nil {
		return s.getRoleByUsername(ctx, username)
	}
	return s.UnimplementedUserRepository.GetRoleByUsername(ctx, username)
}

func (s *stubRepo) DeleteUserById(ctx context.Context, id string) error {
	if s.deleteUserById != nil {
		return s.deleteUserById(ctx, id)
	}
	return s.UnimplementedUserRepository.DeleteUserById(ctx, id)
}

// fakeHash records hashing work and produces reversible digests so tests can
// assert what was stored.
type fakeHash struct {
	hashCalls int
}

func (f *fakeHash) Hash(plain string) (string, error) {
	f.hashCalls++
	return "hashed:" + plain, nil
}

func (f *fakeHash) Compare(digest, plain string) bool {
	return digest == "hashed:"+plain
}

// memoryTokenStore is an in-memory RefreshTokenStore.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: map[string]string{}}
}

func (m *memoryTokenStore) Store(_ context.Context, token, username string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = username
	return nil
}

func (m *memoryTokenStore) Exists(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tokens[token]
	return ok, nil
}

func (m *memoryTokenStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

func notFoundPassword(_ context.Context, _ string) (string, error) {
	return "", domain.NewInvariantError("username tidak ditemukan")
}
