package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dovydas-v/uniguide/internal/config"
	"github.com/dovydas-v/uniguide/internal/db"
	"github.com/dovydas-v/uniguide/internal/types"
)

// memoryUserStore is an in-memory UserStore for unit tests.
type memoryUserStore struct {
	users map[uuid.UUID]*db.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (s *memoryUserStore) CreateUser(_ context.Context, u *db.User) (uuid.UUID, error) {
	id := uuid.New()
	stored := *u
	stored.ID = id
	stored.CreatedAt = time.Now()
	s.users[id] = &stored
	return id, nil
}

func (s *memoryUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memoryUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*db.User, error) {
	return s.users[id], nil
}

func (s *memoryUserStore) UpdateUserPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if u, ok := s.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func testPasswordConfig(t *testing.T) *config.PasswordConfig {
	t.Helper()
	// Lowest accepted cost keeps bcrypt fast in tests.
	return &config.PasswordConfig{BcryptCost: 10}
}

func registerTestUser(t *testing.T, svc *UserService) *types.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Username: "studentas",
		Email:    "studentas@example.lt",
		Password: "slaptazodis123",
	})
	require.NoError(t, err)
	return user
}

func TestUserService_Register(t *testing.T) {
	store := newMemoryUserStore()
	svc := NewUserService(store, testPasswordConfig(t))

	user := registerTestUser(t, svc)

	assert.Equal(t, "studentas", user.Username)
	assert.Equal(t, "studentas@example.lt", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	stored := store.users[user.ID]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "slaptazodis123", stored.PasswordHash)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newMemoryUserStore(), testPasswordConfig(t))
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Username: "kitas",
		Email:    "studentas@example.lt",
		Password: "kitasslaptazodis",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login(t *testing.T) {
	svc := NewUserService(newMemoryUserStore(), testPasswordConfig(t))
	registered := registerTestUser(t, svc)

	user, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "studentas@example.lt",
		Password: "slaptazodis123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	svc := NewUserService(newMemoryUserStore(), testPasswordConfig(t))
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "studentas@example.lt",
		Password: "neteisingas",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	svc := NewUserService(newMemoryUserStore(), testPasswordConfig(t))
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nera@example.lt",
		Password: "slaptazodis123",
	})
	require.Error(t, err)
	// Same error as a wrong password so callers cannot probe for accounts.
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc := NewUserService(newMemoryUserStore(), testPasswordConfig(t))
	user := registerTestUser(t, svc)

	err := svc.UpdatePassword(context.Background(), user.ID, "slaptazodis123", "naujasslaptazodis")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email:    "studentas@example.lt",
		Password: "naujasslaptazodis",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email:    "studentas@example.lt",
		Password: "slaptazodis123",
	})
	assert.Error(t, err)
}

func TestUserService_UpdatePasswordWrongCurrent(t *testing.T) {
	svc := NewUserService(newMemoryUserStore(), testPasswordConfig(t))
	user := registerTestUser(t, svc)

	err := svc.UpdatePassword(context.Background(), user.ID, "neteisingas", "naujasslaptazodis")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordMismatch{}, err)
}

func TestUserService_UpdatePasswordUnknownUser(t *testing.T) {
	svc := NewUserService(newMemoryUserStore(), testPasswordConfig(t))

	err := svc.UpdatePassword(context.Background(), uuid.New(), "bet", "kas-nors-naujo")
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}
