package ports

import (
	"context"

	"github.com/authdash/dashboard-api/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
