package cryptox

import (
	"bytes"
	"testing"
)

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != 32 {
		t.Errorf("expected 32-byte key, got %d", len(key1))
	}
}

func TestDeriveMasterKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveMasterKey(password, []byte("salt-1"))
	key2 := DeriveMasterKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("different salts must produce different keys")
	}

	key3 := DeriveMasterKey([]byte("other-password"), []byte("salt-1"))
	if bytes.Equal(key1, key3) {
		t.Errorf("different passwords must produce different keys")
	}
}

func TestMakeVerifier_DeterministicAndOneWay(t *testing.T) {
	key := DeriveMasterKey([]byte("pw"), []byte("salt"))

	v1 := MakeVerifier(key)
	v2 := MakeVerifier(key)

	if !bytes.Equal(v1, v2) {
		t.Errorf("verifier must be deterministic")
	}
	if len(v1) != 32 {
		t.Errorf("expected 32-byte verifier, got %d", len(v1))
	}
	if bytes.Equal(v1, key) {
		t.Errorf("verifier must not equal the master key")
	}
}
