// Package fingerprint derives the canonical 32-byte digest that certifies a
// combo's semantic fields. External consumers compare fingerprints for
// equality when deduplicating and auditing combos, so the byte layout below
// is a portability contract: it must produce bit-identical output across
// implementations and must never change.
package fingerprint

import (
	"crypto/sha256"
	"encoding/binary"
)

// Size is the length of a combo fingerprint in bytes.
const Size = sha256.Size

// Compute hashes the five creation-time fields of a combo into its
// fingerprint. The input to SHA-256 is the concatenation, in this exact
// order, of:
//
//	raw UTF-8 bytes of name
//	damage     as 4 little-endian bytes
//	meterGain  as 4 little-endian bytes
//	moveCount  as 1 byte
//	characterID as 1 byte
//
// The function is pure: no clock, no randomness, no state.
func Compute(name string, damage uint32, meterGain uint32, moveCount uint8, characterID uint8) [Size]byte {
	input := make([]byte, 0, len(name)+10)
	input = append(input, name...)
	input = binary.LittleEndian.AppendUint32(input, damage)
	input = binary.LittleEndian.AppendUint32(input, meterGain)
	input = append(input, moveCount, characterID)
	return sha256.Sum256(input)
}
