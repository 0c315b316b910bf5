// Package events provides a PostgreSQL-backed append-only event ledger.
// Each row stores the SHA-256 of its predecessor's hash concatenated with
// its own fields, so rewriting history invalidates every later row.
package events

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fgclabs/combovault/internal/dbx"
	"github.com/fgclabs/combovault/internal/server/models"
)

// chainLockID keys the advisory lock that serializes ledger appends.
// Transactions on different combo records would otherwise read the same
// chain tail under read committed and fork the chain.
const chainLockID int64 = 0x636f6d626f6576 // "comboev"

// PostgresRepository implements the event ledger over a dbx.DBTX. Appends
// must run inside a transaction together with the state change they record;
// the advisory lock is transaction-scoped and releases on commit/rollback.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// chainHash computes the ledger hash for an event given its predecessor's hash.
func chainHash(prev []byte, event *models.Event) []byte {
	h := sha256.New()
	h.Write(prev)
	h.Write([]byte(event.Kind))
	h.Write([]byte(event.ComboAddress))
	h.Write([]byte(event.Actor))
	h.Write(event.Payload)
	return h.Sum(nil)
}

// Append chains the event to the latest row and inserts it. The chain tail
// is read only after taking the append lock, so two concurrent transactions
// cannot both chain to the same predecessor.
func (r *PostgresRepository) Append(ctx context.Context, event *models.Event) error {
	if _, err := r.db.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock($1)`, chainLockID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	var prev []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT hash FROM events ORDER BY id DESC LIMIT 1`).Scan(&prev)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("db error: %w", err)
	}

	event.PrevHash = prev
	event.Hash = chainHash(prev, event)

	query := `
		INSERT INTO events (kind, combo_address, actor, payload, prev_hash, hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query,
		event.Kind, event.ComboAddress, event.Actor, event.Payload,
		event.PrevHash, event.Hash, event.CreatedAt).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
