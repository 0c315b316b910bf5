// Package refreshtokens declares the storage contract for refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/fgclabs/combovault/internal/server/models"
)

// Repository issues, looks up and revokes refresh tokens. Tokens are opaque
// strings; the repository never inspects or renews them.
type Repository interface {
	// Create stores token for userID, expiring validity from now.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns the row holding token, including its expiry, or a
	// not-found error when the token does not exist.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete revokes token. Revoking an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
