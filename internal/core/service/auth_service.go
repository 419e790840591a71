package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/authdash/dashboard-api/internal/core/domain"
	"github.com/authdash/dashboard-api/internal/core/ports"
	"github.com/authdash/dashboard-api/internal/pkg/hash"
	"github.com/authdash/dashboard-api/internal/pkg/token"
)

const defaultTokenTTL = 30 * time.Minute

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	hasher   *hash.Bcrypt
	tokens   *token.Service
	tokenTTL time.Duration
}

func NewAuthService(repo ports.UserRepository, hasher *hash.Bcrypt, tokens *token.Service, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	if email == "" || username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Pre-check for a friendly Conflict; the repository's unique index still
	// backstops the race between this lookup and the insert.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials and issues a bearer token bound to the user's
// email. Unknown email and wrong password are reported identically as
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password for %d: %w", user.ID, err)
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}
