package markov

import (
	"log/slog"
	"strings"
)

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	seed  string
	count int
}

// GenerateOption is a function that configures generation parameters. It's used
// as a variadic argument in Generate and GenerateTokens.
type GenerateOption func(*generateOptions)

// WithSeed sets the first token of the output. It must be a token that has at
// least one follower in the corpus. An empty seed means a random start.
func WithSeed(seed string) GenerateOption {
	return func(o *generateOptions) { o.seed = seed }
}

// WithCount sets the maximum number of tokens to generate. Fewer tokens are
// returned when the walk reaches a token with no followers.
// Default: DefaultCount
func WithCount(n int) GenerateOption {
	return func(o *generateOptions) { o.count = n }
}

// Generate walks the transition table and returns the visited tokens joined
// by single spaces. See GenerateTokens for the rules of the walk.
func (m *Model) Generate(opts ...GenerateOption) (string, error) {
	tokens, err := m.GenerateTokens(opts...)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, " "), nil
}

// GenerateTokens walks the transition table and returns between 1 and count
// tokens. The walk starts at the seed, or at a uniformly chosen key when no
// seed is set, and then repeatedly moves to a follower picked uniformly from
// the current token's follower list. Repeated followers are proportionally
// more likely. The walk ends early, without error, at a token that has no
// followers.
//
// Errors: ErrInvalidCount for count <= 0, ErrUntrained before Train,
// an *UnknownSeedError for a seed that is not a key, and ErrEmptyModel when
// no seed is set and the table is empty.
func (m *Model) GenerateTokens(opts ...GenerateOption) ([]string, error) {
	options := &generateOptions{
		count: DefaultCount,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.count <= 0 {
		return nil, ErrInvalidCount
	}
	if m.state != Trained {
		return nil, ErrUntrained
	}

	current, err := m.start(options.seed)
	if err != nil {
		return nil, err
	}

	output := []string{current}
	for len(output) < options.count {
		followers := m.table[current]
		if len(followers) == 0 { // Dead end in chain
			m.logger.Debug("Generation terminated due to dead-end",
				slog.String("last_token", current),
				slog.Int("generated_length", len(output)),
				slog.Int("requested_length", options.count),
			)
			break
		}
		current = followers[m.src.IntN(len(followers))]
		output = append(output, current)
	}

	return output, nil
}

// start resolves the first token of a walk.
func (m *Model) start(seed string) (string, error) {
	if seed != "" {
		if _, ok := m.table[seed]; !ok {
			return "", &UnknownSeedError{Seed: seed}
		}
		return seed, nil
	}
	if len(m.keys) == 0 {
		return "", ErrEmptyModel
	}
	return m.keys[m.src.IntN(len(m.keys))], nil
}
