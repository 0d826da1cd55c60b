package repository

import (
	"context"
	"errors"

	"github.com/mzaitsev/authd/internal/user/domain"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Repository is the exclusive owner of account records for the process
// lifetime. Create is the only mutator besides the test-only Clear.
type Repository interface {
	Create(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Count(ctx context.Context) (int, error)
	All(ctx context.Context) ([]domain.User, error)
	Clear(ctx context.Context) error
}
