package ports

import (
	"context"

	"github.com/authdash/dashboard-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
