// Package models holds client-side representations of server data.
package models

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Combo is the client-side view of a combo record as returned by the server.
type Combo struct {
	Address           string
	Owner             string
	CharacterID       uint8
	Name              string
	Damage            uint32
	MeterGain         uint32
	MoveCount         uint8
	Fingerprint       []byte
	CreatedAt         time.Time
	VerificationCount uint32
	LastVerifiedAt    time.Time
	Deposit           int64
	Bump              uint8
}

// String renders the record in the multi-line format used by the CLI
// "show" command.
func (c *Combo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Address:       %s\n", c.Address)
	fmt.Fprintf(&b, "Owner:         %s\n", c.Owner)
	fmt.Fprintf(&b, "Character:     %d\n", c.CharacterID)
	fmt.Fprintf(&b, "Name:          %s\n", c.Name)
	fmt.Fprintf(&b, "Damage:        %d\n", c.Damage)
	fmt.Fprintf(&b, "Meter gain:    %d\n", c.MeterGain)
	fmt.Fprintf(&b, "Moves:         %d\n", c.MoveCount)
	fmt.Fprintf(&b, "Fingerprint:   %s\n", hex.EncodeToString(c.Fingerprint))
	fmt.Fprintf(&b, "Created:       %s\n", c.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Verifications: %d\n", c.VerificationCount)
	if !c.LastVerifiedAt.IsZero() {
		fmt.Fprintf(&b, "Last verified: %s\n", c.LastVerifiedAt.Format(time.RFC3339))
	} else {
		fmt.Fprintf(&b, "Last verified: never\n")
	}
	fmt.Fprintf(&b, "Deposit:       %d\n", c.Deposit)
	return b.String()
}
