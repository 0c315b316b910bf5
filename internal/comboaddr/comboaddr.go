// Package comboaddr derives the deterministic storage address of a combo
// record from its owner's identity. One owner maps to one address, which is
// how the store enforces "one combo per owner": creating a second combo
// lands on the same address and is rejected by the allocation layer.
package comboaddr

import (
	"crypto/sha256"
	"encoding/hex"
)

// domainTag namespaces combo addresses so identical owner IDs used by other
// record kinds can never collide with a combo slot.
const domainTag = "combo"

// CanonicalBump is the bump nonce the allocation layer supplies first. All
// SHA-256 outputs are valid addresses here, so the canonical bump is always
// usable; the bump is still stored on the record so the address can be
// re-derived and checked later.
const CanonicalBump uint8 = 255

// Derive computes the storage address for owner with an explicit bump:
// hex(SHA-256(domainTag ‖ owner ‖ bump)).
func Derive(owner string, bump uint8) string {
	input := make([]byte, 0, len(domainTag)+len(owner)+1)
	input = append(input, domainTag...)
	input = append(input, owner...)
	input = append(input, bump)
	sum := sha256.Sum256(input)
	return hex.EncodeToString(sum[:])
}

// FindAddress returns the address and bump the allocation layer should use
// when creating owner's combo record.
func FindAddress(owner string) (string, uint8) {
	return Derive(owner, CanonicalBump), CanonicalBump
}
