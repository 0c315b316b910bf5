package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ComboAllocationSize is the fixed size, in bytes, of a combo record's
// backing storage allocation. Every record reserves this much regardless of
// the actual name length, so the storage deposit is the same for all records.
const ComboAllocationSize = 256

// Validation bounds for combo record fields.
const (
	MaxComboNameLength = 64
	MinComboDamage     = 1
	MaxComboDamage     = 1000
	MinComboMeterGain  = 1
	MaxComboMeterGain  = 100
	MinComboMoveCount  = 1
	MaxComboMoveCount  = 20
)
