package config

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte(`"1h30m"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Duration(d) != 90*time.Minute {
		t.Errorf("expected 1h30m, got %v", time.Duration(d))
	}
}

func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte(`60000000000`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if time.Duration(d) != time.Minute {
		t.Errorf("expected 1m, got %v", time.Duration(d))
	}
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte(`"not-a-duration"`), &d); err == nil {
		t.Error("expected error for invalid duration string")
	}
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(45 * time.Second)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `"45s"` {
		t.Errorf("expected \"45s\", got %s", raw)
	}
}
