// Package events declares the append-only notification ledger contract.
package events

import (
	"context"

	"github.com/fgclabs/combovault/internal/server/models"
)

// Repository appends notification events to a tamper-evident ledger.
type Repository interface {
	// Append stores the event, chaining its hash to the previous event.
	// On success the event's ID, PrevHash and Hash fields are filled in.
	Append(ctx context.Context, event *models.Event) error
}
