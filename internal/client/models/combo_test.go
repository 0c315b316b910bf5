package models

import (
	"strings"
	"testing"
	"time"
)

func TestComboString_VerifiedRecord(t *testing.T) {
	c := &Combo{
		Address:           "abc123",
		Owner:             "u-1",
		CharacterID:       7,
		Name:              "uppercut_combo",
		Damage:            250,
		MeterGain:         30,
		MoveCount:         4,
		Fingerprint:       []byte{0xc9, 0xc8},
		CreatedAt:         time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		VerificationCount: 3,
		LastVerifiedAt:    time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		Deposit:           2560,
	}

	s := c.String()
	for _, want := range []string{
		"Address:       abc123",
		"Name:          uppercut_combo",
		"Fingerprint:   c9c8",
		"Verifications: 3",
		"Last verified: 2026-02-03T00:00:00Z",
		"Deposit:       2560",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %q:\n%s", want, s)
		}
	}
}

func TestComboString_NeverVerified(t *testing.T) {
	c := &Combo{Address: "abc", Name: "c"}
	if !strings.Contains(c.String(), "Last verified: never") {
		t.Fatalf("expected never-verified marker:\n%s", c.String())
	}
}
