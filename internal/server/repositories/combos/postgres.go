// Package combos provides a PostgreSQL-backed repository for combo records.
package combos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fgclabs/combovault/internal/common"
	"github.com/fgclabs/combovault/internal/dbx"
	"github.com/fgclabs/combovault/internal/server/models"
)

// PostgresRepository implements combo record storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the record. The address is the primary key, so an occupied
// address makes the insert a no-op and Create returns ErrComboAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, combo *models.Combo) error {
	query := `
		INSERT INTO combos (address, owner, character_id, name, damage, meter_gain, move_count, fingerprint, deposit, bump, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (address) DO NOTHING;
	`
	res, err := r.db.ExecContext(ctx, query,
		combo.Address, combo.Owner, int16(combo.CharacterID), combo.Name,
		int64(combo.Damage), int64(combo.MeterGain), int16(combo.MoveCount),
		combo.Fingerprint, combo.Deposit, int16(combo.Bump), combo.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrComboAlreadyExists
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// GetByAddress returns the record at address, or common.ErrorNotFound.
func (r *PostgresRepository) GetByAddress(ctx context.Context, address string) (*models.Combo, error) {
	query := `
		SELECT address, owner, character_id, name, damage, meter_gain, move_count,
		       fingerprint, deposit, bump, verification_count, created_at, last_verified_at
		FROM combos
		WHERE address = $1
	`
	var (
		combo       models.Combo
		characterID int16
		damage      int64
		meterGain   int64
		moveCount   int16
		bump        int16
		verifCount  int64
		lastVerif   sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, address).Scan(
		&combo.Address, &combo.Owner, &characterID, &combo.Name, &damage, &meterGain, &moveCount,
		&combo.Fingerprint, &combo.Deposit, &bump, &verifCount, &combo.CreatedAt, &lastVerif,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	combo.CharacterID = uint8(characterID)
	combo.Damage = uint32(damage)
	combo.MeterGain = uint32(meterGain)
	combo.MoveCount = uint8(moveCount)
	combo.Bump = uint8(bump)
	combo.VerificationCount = uint32(verifCount)
	if lastVerif.Valid {
		t := lastVerif.Time
		combo.LastVerifiedAt = &t
	}
	return &combo, nil
}

// IncrementVerification adds one to the verification counter and stamps the
// verification time, returning the new counter value.
func (r *PostgresRepository) IncrementVerification(ctx context.Context, address string, at time.Time) (uint32, error) {
	query := `
		UPDATE combos SET verification_count = verification_count + 1, last_verified_at = $2
		WHERE address = $1
		RETURNING verification_count
	`
	var count int64
	err := r.db.QueryRowContext(ctx, query, address, at).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return uint32(count), nil
}

// Delete removes the record at address. A vacant address returns
// common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, address string) error {
	query := `
		DELETE FROM combos
		WHERE address = $1
	`
	res, err := r.db.ExecContext(ctx, query, address)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
