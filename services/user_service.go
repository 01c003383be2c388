package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"betterBiteAPI/internal/kvstore"
	"betterBiteAPI/internal/progress"
	"betterBiteAPI/internal/seed"
	"betterBiteAPI/internal/types/user"
)

// Key-value keys the user registry and the session live under.
const (
	keyRegisteredUsers = "usuariosCadastrados"
	keySession         = "usuarioLogado"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("no user logged in")
)

// UserService keeps registered users and the single logged in user in the
// key-value store. Seed users can log in but are never written to the registry.
type UserService struct {
	// mu serializes read-modify-write cycles over the registry blob.
	mu         sync.Mutex
	kv         kvstore.Store
	seedUsers  []user.User
	bcryptCost int
	logger     *zap.Logger
}

// NewUserService hashes the seed users' passwords with bcryptCost.
func NewUserService(kv kvstore.Store, seedUsers []seed.SeedUser, bcryptCost int, logger *zap.Logger) (*UserService, error) {
	s := &UserService{
		kv:         kv,
		seedUsers:  make([]user.User, 0, len(seedUsers)),
		bcryptCost: bcryptCost,
		logger:     logger,
	}
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed user %s: %w", su.User.Email, err)
		}
		u := su.User
		u.PasswordHash = string(hash)
		s.seedUsers = append(s.seedUsers, u)
	}
	return s, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func splitRestrictions(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *UserService) registeredUsers(ctx context.Context) ([]user.User, error) {
	raw, err := s.kv.Get(ctx, keyRegisteredUsers)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []user.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read registered users: %w", err)
	}

	var users []user.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode registered users: %w", err)
	}
	return users, nil
}

func (s *UserService) saveRegisteredUsers(ctx context.Context, users []user.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode registered users: %w", err)
	}
	if err := s.kv.Set(ctx, keyRegisteredUsers, string(data)); err != nil {
		return fmt.Errorf("failed to save registered users: %w", err)
	}
	return nil
}

func (s *UserService) setSession(ctx context.Context, u user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.kv.Set(ctx, keySession, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func findByEmail(users []user.User, email string) (user.User, bool) {
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			return u, true
		}
	}
	return user.User{}, false
}

// Register creates an account and logs it in.
func (s *UserService) Register(ctx context.Context, req *user.RegisterRequest) (*user.Profile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	birthDate, err := progress.ParseDay(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	email := normalizeEmail(req.Email)
	if _, ok := findByEmail(s.seedUsers, email); ok {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.registeredUsers(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := findByEmail(users, email); ok {
		return nil, ErrEmailTaken
	}

	u := user.NewUser(
		strings.TrimSpace(req.Name),
		email,
		string(hash),
		birthDate,
		user.Gender(req.Gender),
		req.WeightKg,
		req.HeightCm,
		splitRestrictions(req.DietaryRestrictions),
	)

	if err := s.saveRegisteredUsers(ctx, append(users, u)); err != nil {
		return nil, err
	}
	if err := s.setSession(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", u.ID))
	profile := u.Profile()
	return &profile, nil
}

// Login checks registered users first, then the seed users.
func (s *UserService) Login(ctx context.Context, req *user.LoginRequest) (*user.Profile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	users, err := s.registeredUsers(ctx)
	if err != nil {
		return nil, err
	}

	u, ok := findByEmail(users, email)
	if !ok {
		u, ok = findByEmail(s.seedUsers, email)
	}
	if !ok || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		logins.WithLabelValues("rejected").Inc()
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	err = s.setSession(ctx, u)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	logins.WithLabelValues("ok").Inc()

	s.logger.Info("user logged in", zap.String("user_id", u.ID))
	profile := u.Profile()
	return &profile, nil
}

func (s *UserService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Del(ctx, keySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the logged in user, or ErrNoSession.
func (s *UserService) CurrentUser(ctx context.Context) (*user.User, error) {
	raw, err := s.kv.Get(ctx, keySession)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &u, nil
}

// UpdateProfile edits the logged in user. The registry copy is updated when
// the user registered through the API; the session is always rewritten.
func (s *UserService) UpdateProfile(ctx context.Context, req *user.UpdateProfileRequest) (*user.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	current.Name = strings.TrimSpace(req.Name)
	current.WeightKg = req.WeightKg
	current.HeightCm = req.HeightCm
	current.DietaryRestrictions = splitRestrictions(req.DietaryRestrictions)

	users, err := s.registeredUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == current.ID {
			users[i] = *current
			if err := s.saveRegisteredUsers(ctx, users); err != nil {
				return nil, err
			}
			break
		}
	}

	if err := s.setSession(ctx, *current); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", zap.String("user_id", current.ID))
	profile := current.Profile()
	return &profile, nil
}
