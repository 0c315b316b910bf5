// Package combos declares the server-side repository contract for combo
// record persistence.
package combos

import (
	"context"
	"time"

	"github.com/fgclabs/combovault/internal/server/models"
)

// Repository defines operations for storing, reading, verifying and closing
// combo records.
type Repository interface {
	// Create inserts a new combo record. If a record with the same address
	// already exists, implementations return ErrComboAlreadyExists and leave
	// the stored record untouched.
	Create(ctx context.Context, combo *models.Combo) error

	// GetByAddress returns the record stored at the given address.
	// Implementations return a not-found error when the address is vacant.
	GetByAddress(ctx context.Context, address string) (*models.Combo, error)

	// IncrementVerification bumps the record's verification counter and
	// stamps the verification time. Returns the new counter value.
	IncrementVerification(ctx context.Context, address string, at time.Time) (uint32, error)

	// Delete removes the record at the given address. Deleting a vacant
	// address returns a not-found error.
	Delete(ctx context.Context, address string) error
}
