// Package users stores accounts: the salt/verifier pair used to log in and
// the balance that accumulates reclaimed combo deposits.
package users

import (
	"context"

	"github.com/fgclabs/combovault/internal/server/models"
)

// Repository is the storage contract for accounts.
type Repository interface {
	// Create stores a new account and returns it with its generated ID.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns the account registered under login, or a
	// not-found error.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// CreditBalance adds amount to the named user's balance and returns the
	// new balance. Implementations should return a not-found error when the
	// user is absent.
	CreditBalance(ctx context.Context, login string, amount int64) (int64, error)
}
