package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrUntrained is returned when generating from a Model before Train was called.
	ErrUntrained = errors.New("markov: model has not been trained")
	// ErrUnknownSeed is matched by every *UnknownSeedError.
	ErrUnknownSeed = errors.New("markov: seed not found in transition table")
	// ErrEmptyModel is returned when no seed was given and the table has no keys
	// to start from, i.e. the corpus had fewer than two tokens.
	ErrEmptyModel = errors.New("markov: transition table is empty")
	// ErrInvalidCount is returned for a non-positive token count.
	ErrInvalidCount = errors.New("markov: token count must be positive")
)

// UnknownSeedError reports a seed token that is not a key of the transition table.
type UnknownSeedError struct {
	Seed string
}

func (e *UnknownSeedError) Error() string {
	return fmt.Sprintf("markov: seed token '%s' not found in transition table", e.Seed)
}

// Is reports whether target is ErrUnknownSeed.
func (e *UnknownSeedError) Is(target error) bool {
	return target == ErrUnknownSeed
}
