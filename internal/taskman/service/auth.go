package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Banup3/TaskManager/internal/taskman/domain"
	"github.com/Banup3/TaskManager/internal/taskman/store"
	"github.com/Banup3/TaskManager/pkg/cryptox"
	"github.com/Banup3/TaskManager/pkg/idx"
	"github.com/Banup3/TaskManager/pkg/jwtx"
	"github.com/Banup3/TaskManager/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrDuplicateEmail is returned when signing up with a taken email.
	ErrDuplicateEmail = errors.New("duplicate_email")
)

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// AuthResult pairs a freshly signed token with the user it identifies.
type AuthResult struct {
	Token string
	User  domain.User
}

// Signup registers a new user and signs them in. Emails are normalized to
// lowercase before the uniqueness check so "A@x.com" and "a@x.com" collide.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*AuthResult, error) {
	l := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("signup rejected, email taken", slog.String("email", email))
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	// Re-read so CreatedAt/UpdatedAt reflect the stored row.
	user, err = s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return s.issue(user)
}

// Login verifies the password against the stored argon2 hash. The hash
// comparison is constant time; a missing user takes the same path with a
// throwaway verify so response timing does not leak which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.VerifyPassword(password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	l.Info("login ok", slog.String("user_id", user.ID))
	return s.issue(user)
}

// GetCurrentUser resolves the token subject to the stored profile.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

func (s *AuthService) issue(user domain.User) (*AuthResult, error) {
	claims := jwtx.NewUserClaims(user.ID, user.Email, user.Name, s.TokenTTL, s.Issuer, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// dummyHash is a valid argon2id PHC string for an unguessable password. It
// keeps the login path doing hash work even when the email is unknown.
const dummyHash = "$argon2id$v=19$m=65536,t=3,p=2$AAAAAAAAAAAAAAAAAAAAAA$utSPBRHquCGBffaCq1BXbWYHiHSyJ6ohUhXZEQ4BTJQ"
