package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"betterBiteAPI/internal/kvstore"
	"betterBiteAPI/internal/seed"
	"betterBiteAPI/internal/types/user"
)

func newTestUserService(t *testing.T) (*UserService, kvstore.Store) {
	t.Helper()
	kv := kvstore.NewLocal()
	seedUser := seed.SeedUser{
		User:     user.NewUser("Seed User", "seed@example.com", "", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), user.GenderFemale, 60, 165, []string{}),
		Password: "hash1",
	}
	s, err := NewUserService(kv, []seed.SeedUser{seedUser}, bcrypt.MinCost, zap.NewNop())
	require.NoError(t, err)
	return s, kv
}

func registerRequest(email string) *user.RegisterRequest {
	return &user.RegisterRequest{
		Name:                "Ana",
		Email:               email,
		Password:            "secret1",
		BirthDate:           "1999-02-02",
		Gender:              "female",
		WeightKg:            58,
		HeightCm:            160,
		DietaryRestrictions: "gluten, lactose ,",
	}
}

func TestUserService_RegisterLogsIn(t *testing.T) {
	s, kv := newTestUserService(t)
	ctx := context.Background()

	p, err := s.Register(ctx, registerRequest("Ana@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", p.Email)
	assert.Equal(t, []string{"gluten", "lactose"}, p.DietaryRestrictions)

	current, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, current.ID)
	assert.NotEqual(t, "secret1", current.PasswordHash)

	raw, err := kv.Get(ctx, keyRegisteredUsers)
	require.NoError(t, err)
	assert.Contains(t, raw, "ana@example.com")
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, registerRequest("ana@example.com"))
	require.NoError(t, err)
	_, err = s.Register(ctx, registerRequest("ANA@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.Register(ctx, registerRequest("seed@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_RegisterValidation(t *testing.T) {
	s, _ := newTestUserService(t)
	req := registerRequest("not-an-email")
	_, err := s.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_LoginAndLogout(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := s.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = s.Login(ctx, &user.LoginRequest{Email: "seed@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, &user.LoginRequest{Email: "nobody@example.com", Password: "hash1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	p, err := s.Login(ctx, &user.LoginRequest{Email: "seed@example.com", Password: "hash1"})
	require.NoError(t, err)
	assert.Equal(t, "Seed User", p.Name)

	require.NoError(t, s.Logout(ctx))
	_, err = s.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestUserService_LoginPrefersRegisteredUsers(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, registerRequest("ana@example.com"))
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	p, err := s.Login(ctx, &user.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
}

func TestUserService_UpdateProfile(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := s.UpdateProfile(ctx, &user.UpdateProfileRequest{Name: "X", WeightKg: 1, HeightCm: 1})
	assert.ErrorIs(t, err, ErrNoSession)

	registered, err := s.Register(ctx, registerRequest("ana@example.com"))
	require.NoError(t, err)

	p, err := s.UpdateProfile(ctx, &user.UpdateProfileRequest{
		Name:                "Ana Maria",
		WeightKg:            57,
		HeightCm:            161,
		DietaryRestrictions: "soy",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, p.ID)
	assert.Equal(t, "ana@example.com", p.Email)
	assert.Equal(t, []string{"soy"}, p.DietaryRestrictions)

	// The registry copy changed too, so a fresh login sees the new name.
	require.NoError(t, s.Logout(ctx))
	again, err := s.Login(ctx, &user.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", again.Name)
}

func TestUserService_ConcurrentRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("same email registers once", func(t *testing.T) {
		s, _ := newTestUserService(t)

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Register(ctx, registerRequest("dup@example.com"))
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		ok := 0
		for err := range errs {
			if err == nil {
				ok++
				continue
			}
			assert.ErrorIs(t, err, ErrEmailTaken)
		}
		assert.Equal(t, 1, ok)

		users, err := s.registeredUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("distinct emails are all kept", func(t *testing.T) {
		s, _ := newTestUserService(t)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := s.Register(ctx, registerRequest(fmt.Sprintf("user%d@example.com", i)))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		users, err := s.registeredUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 20)
	})
}
