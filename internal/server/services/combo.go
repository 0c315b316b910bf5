// Package services contains server-side business logic. This file implements
// ComboService: creation, verification and closing of combo records, with
// every state change and its ledger event committed in one transaction.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fgclabs/combovault/internal/comboaddr"
	"github.com/fgclabs/combovault/internal/common"
	"github.com/fgclabs/combovault/internal/dbx"
	"github.com/fgclabs/combovault/internal/fingerprint"
	"github.com/fgclabs/combovault/internal/server/config"
	"github.com/fgclabs/combovault/internal/server/models"
	"github.com/fgclabs/combovault/internal/server/repositories/repomanager"
)

// ComboService implements the combo record lifecycle:
// - Create: validate fields, derive the address, store the record
// - Verify: bump the verification counter
// - Close: owner-gated destruction with deposit reclaim
// - Get: read a stored record
type ComboService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	depositPerByte int64

	// now is a seam for tests.
	now func() time.Time
}

// NewComboService constructs a ComboService using repositories and server config.
func NewComboService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ComboService {
	return &ComboService{
		db:             db,
		repomanager:    m,
		depositPerByte: cfg.DepositPerByte,
		now:            time.Now,
	}
}

// validateComboFields checks the creation-time preconditions. All checks run
// before any mutation; the first violated bound fails the whole call.
func validateComboFields(name string, damage uint32, meterGain uint32, moveCount uint8) error {
	if len(name) > common.MaxComboNameLength {
		return common.ErrNameTooLong
	}
	if damage < common.MinComboDamage || damage > common.MaxComboDamage {
		return common.ErrInvalidDamage
	}
	if meterGain < common.MinComboMeterGain || meterGain > common.MaxComboMeterGain {
		return common.ErrInvalidMeterGain
	}
	if moveCount < common.MinComboMoveCount || moveCount > common.MaxComboMoveCount {
		return common.ErrInvalidMoveCount
	}
	return nil
}

type comboCreatedPayload struct {
	Combo       string `json:"combo"`
	Authority   string `json:"authority"`
	CharacterID uint8  `json:"character_id"`
	Damage      uint32 `json:"damage"`
	Timestamp   int64  `json:"timestamp"`
}

type comboVerifiedPayload struct {
	Combo             string `json:"combo"`
	MovesCount        int    `json:"moves_count"`
	VerificationCount uint32 `json:"verification_count"`
	ReplayKey         string `json:"replay_key,omitempty"`
	Timestamp         int64  `json:"timestamp"`
}

type comboClosedPayload struct {
	Combo       string `json:"combo"`
	Authority   string `json:"authority"`
	Destination string `json:"destination"`
	Deposit     int64  `json:"deposit"`
	Timestamp   int64  `json:"timestamp"`
}

// Create validates the fields, derives the record address for owner, computes
// the fingerprint and stores the record together with a ComboCreated event.
// An owner that already holds a record gets ErrComboAlreadyExists.
func (s *ComboService) Create(ctx context.Context, owner string, characterID uint8, name string, damage uint32, meterGain uint32, moveCount uint8) (*models.Combo, error) {
	if err := validateComboFields(name, damage, meterGain, moveCount); err != nil {
		return nil, err
	}

	address, bump := comboaddr.FindAddress(owner)
	fp := fingerprint.Compute(name, damage, meterGain, moveCount, characterID)
	createdAt := s.now().UTC()

	combo := &models.Combo{
		Address:     address,
		Owner:       owner,
		CharacterID: characterID,
		Name:        name,
		Damage:      damage,
		MeterGain:   meterGain,
		MoveCount:   moveCount,
		Fingerprint: fp[:],
		Deposit:     common.ComboAllocationSize * s.depositPerByte,
		Bump:        bump,
		CreatedAt:   createdAt,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Combos(tx).Create(ctx, combo); err != nil {
			return err
		}
		payload, err := json.Marshal(comboCreatedPayload{
			Combo:       combo.Address,
			Authority:   combo.Owner,
			CharacterID: combo.CharacterID,
			Damage:      combo.Damage,
			Timestamp:   createdAt.Unix(),
		})
		if err != nil {
			return fmt.Errorf("error encoding event payload: %w", err)
		}
		return s.repomanager.Events(tx).Append(ctx, &models.Event{
			Kind:         models.EventComboCreated,
			ComboAddress: combo.Address,
			Actor:        combo.Owner,
			Payload:      payload,
			CreatedAt:    createdAt,
		})
	})
	if err != nil {
		return nil, err
	}

	return combo, nil
}

// Verify records a verification of the combo at address. The move sequence is
// bounded but its contents are not checked against the stored record; any
// sequence up to the limit counts, including an empty one. Returns the new
// verification count and the verification time.
func (s *ComboService) Verify(ctx context.Context, verifier string, address string, moves []uint32, replayKey string) (uint32, time.Time, error) {
	if len(moves) > common.MaxComboMoveCount {
		return 0, time.Time{}, common.ErrTooManyMoves
	}

	verifiedAt := s.now().UTC()
	var count uint32

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		count, err = s.repomanager.Combos(tx).IncrementVerification(ctx, address, verifiedAt)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(comboVerifiedPayload{
			Combo:             address,
			MovesCount:        len(moves),
			VerificationCount: count,
			ReplayKey:         replayKey,
			Timestamp:         verifiedAt.Unix(),
		})
		if err != nil {
			return fmt.Errorf("error encoding event payload: %w", err)
		}
		return s.repomanager.Events(tx).Append(ctx, &models.Event{
			Kind:         models.EventComboVerified,
			ComboAddress: address,
			Actor:        verifier,
			Payload:      payload,
			CreatedAt:    verifiedAt,
		})
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	return count, verifiedAt, nil
}

// Close destroys the record at address. Only the record's owner may close it;
// anyone else gets ErrorUnauthorized and the record survives intact. The
// storage deposit is credited to the destination user in the same transaction
// that deletes the record; an unknown destination fails the close with
// ErrDestinationNotFound. The address becomes reusable afterwards.
func (s *ComboService) Close(ctx context.Context, userID string, address string, destination string) error {
	closedAt := s.now().UTC()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		combo, err := s.repomanager.Combos(tx).GetByAddress(ctx, address)
		if err != nil {
			return err
		}
		if combo.Owner != userID {
			return common.ErrorUnauthorized
		}
		if _, err := s.repomanager.Users(tx).CreditBalance(ctx, destination, combo.Deposit); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrDestinationNotFound
			}
			return fmt.Errorf("error crediting deposit: %w", err)
		}
		if err := s.repomanager.Combos(tx).Delete(ctx, address); err != nil {
			return err
		}
		payload, err := json.Marshal(comboClosedPayload{
			Combo:       address,
			Authority:   combo.Owner,
			Destination: destination,
			Deposit:     combo.Deposit,
			Timestamp:   closedAt.Unix(),
		})
		if err != nil {
			return fmt.Errorf("error encoding event payload: %w", err)
		}
		return s.repomanager.Events(tx).Append(ctx, &models.Event{
			Kind:         models.EventComboClosed,
			ComboAddress: address,
			Actor:        userID,
			Payload:      payload,
			CreatedAt:    closedAt,
		})
	})
}

// Get returns the record stored at address.
func (s *ComboService) Get(ctx context.Context, address string) (*models.Combo, error) {
	return s.repomanager.Combos(s.db).GetByAddress(ctx, address)
}
