package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tunecraft/auth-service/internal/domain/entities"
)

// ErrDuplicateEmail is returned by Create when the store's uniqueness
// constraint rejects the insert.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository persists user records. Lookups return (nil, nil) when no
// record matches; errors are reserved for storage failures. Email uniqueness
// is enforced by the store itself, not only by callers checking first, so
// Create must fail with ErrDuplicateEmail when a concurrent insert wins.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// FindByResetToken matches the exact token value with an expiry strictly
	// after now. Expired and unknown tokens are indistinguishable to callers.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*entities.User, error)
}
