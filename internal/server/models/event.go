package models

import "time"

// Event kinds appended to the ledger.
const (
	EventComboCreated  = "combo_created"
	EventComboVerified = "combo_verified"
	EventComboClosed   = "combo_closed"
)

// Event is an append-only notification record. Each event carries the
// hash of its predecessor so the sequence is tamper-evident.
type Event struct {
	ID           int64
	Kind         string
	ComboAddress string
	Actor        string
	Payload      []byte
	PrevHash     []byte
	Hash         []byte
	CreatedAt    time.Time
}
