package models

import "time"

// RefreshToken is a single-use credential for minting a fresh token pair.
// The user service revokes it on use; Expires is checked at redemption
// time, not here.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
