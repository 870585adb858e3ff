package data

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func TestIDSourceUnique(t *testing.T) {
	ids := newIDSource(rand.New(rand.NewSource(1)), 20000)
	seen := make(map[string]bool, 20000)
	for i := 0; i < 20000; i++ {
		id, err := ids.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("Next() = %q, not a UUID: %v", id, err)
		}
		if parsed.Version() != 4 {
			t.Errorf("Next() version = %d, want 4", parsed.Version())
		}
		if seen[id] {
			t.Fatalf("duplicate id %s at %d", id, i)
		}
		seen[id] = true
	}
}

// A constant entropy stream yields the same UUID forever.
func TestIDSourceRejectsRepeats(t *testing.T) {
	entropy := bytes.NewReader(bytes.Repeat([]byte{0xAB}, 16*(maxIDAttempts+1)))
	ids := newIDSource(entropy, 2)

	if _, err := ids.Next(); err != nil {
		t.Fatalf("first Next() error = %v", err)
	}
	if _, err := ids.Next(); !errors.Is(err, ErrIDSpaceExhausted) {
		t.Errorf("second Next() error = %v, want %v", err, ErrIDSpaceExhausted)
	}
}
