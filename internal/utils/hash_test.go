package utils

import "testing"

func TestHashString_Deterministic(t *testing.T) {
	first := HashString("secret-password", "key")
	second := HashString("secret-password", "key")

	if first != second {
		t.Errorf("expected identical hashes, got %s and %s", first, second)
	}
	if first == "" {
		t.Error("expected non-empty hash")
	}
}

func TestHashString_KeySensitive(t *testing.T) {
	withKeyOne := HashString("secret-password", "key-one")
	withKeyTwo := HashString("secret-password", "key-two")

	if withKeyOne == withKeyTwo {
		t.Error("expected different hashes for different keys")
	}
}

func TestHashString_DataSensitive(t *testing.T) {
	first := HashString("password-one", "key")
	second := HashString("password-two", "key")

	if first == second {
		t.Error("expected different hashes for different data")
	}
}
