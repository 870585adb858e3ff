package data

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

const maxIDAttempts = 16

// ErrIDSpaceExhausted is returned when no unused order id could be drawn.
var ErrIDSpaceExhausted = errors.New("order id space exhausted")

// idSource hands out UUID v4 strings and never repeats one it has issued.
type idSource struct {
	entropy io.Reader
	seen    map[string]struct{}
}

func newIDSource(entropy io.Reader, capacity int) *idSource {
	return &idSource{
		entropy: entropy,
		seen:    make(map[string]struct{}, capacity),
	}
}

func (s *idSource) Next() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := uuid.NewRandomFromReader(s.entropy)
		if err != nil {
			return "", fmt.Errorf("draw order id: %w", err)
		}
		key := id.String()
		if _, dup := s.seen[key]; dup {
			continue
		}
		s.seen[key] = struct{}{}
		return key, nil
	}
	return "", fmt.Errorf("%w after %d attempts", ErrIDSpaceExhausted, maxIDAttempts)
}
