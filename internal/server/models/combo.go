// Package models defines server-side data models persisted in the database.
package models

import "time"

// Combo is a verified combo record. Exactly one record may exist per owner
// at a time; the record address is derived from the owner and the bump.
type Combo struct {
	// Address is the derived record address, unique across all records.
	Address string
	// Owner is the user that created the record and may destroy it.
	Owner string

	CharacterID uint8
	Name        string
	Damage      uint32
	MeterGain   uint32
	MoveCount   uint8

	// Fingerprint is the integrity digest over the combo fields.
	Fingerprint []byte

	// Deposit is the storage deposit charged at creation and returned
	// to the destination account when the record is closed.
	Deposit int64
	// Bump is the derivation nonce stored with the record.
	Bump uint8

	VerificationCount uint32
	CreatedAt         time.Time
	LastVerifiedAt    *time.Time
}
