package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenIssuer signs time-boxed session tokens carrying the user's id and
// email. Verification happens wherever a token is presented; issuing is the
// only side the credential manager needs.
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, error)
}

// Notifier delivers a message to an email address. Delivery is best-effort:
// callers must not fail their own operation when Send returns an error.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ResetTokenGenerator produces unguessable reset ticket values.
type ResetTokenGenerator interface {
	Generate() (string, error)
}

// TokenCache records issued session tokens for observability. It is not an
// authority: possession of a valid signed token remains the sole
// authentication proof, so cache writes are best-effort.
type TokenCache interface {
	CacheToken(ctx context.Context, token, userID string, ttl time.Duration) error
}
