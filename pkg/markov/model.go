package markov

import (
	"io"
	"log/slog"
)

// DefaultCount is the number of tokens Generate produces when no count is given.
const DefaultCount = 15

// State describes whether a Model has a transition table to walk.
type State int

const (
	// Untrained is the initial state of every Model. Generation fails in this state.
	Untrained State = iota
	// Trained is entered after the first call to Train and never left.
	Trained
)

func (s State) String() string {
	switch s {
	case Untrained:
		return "untrained"
	case Trained:
		return "trained"
	default:
		return "unknown"
	}
}

// Option is a function that configures a Model.
type Option func(*Model)

// WithSource sets the random source used to pick starting tokens and followers.
// If the Model is shared between goroutines, src must be safe for concurrent use.
// Default: a source backed by the math/rand/v2 top-level functions.
func WithSource(src Source) Option {
	return func(m *Model) {
		if src != nil {
			m.src = src
		}
	}
}

// Model is a first-order Markov chain over whitespace-separated tokens.
// It owns its corpus and the transition table built from it. The table is
// only replaced by Train, so any number of goroutines may call Generate on
// a trained Model as long as its Source is safe for concurrent use.
type Model struct {
	corpus string
	state  State
	// table maps a token to every token that followed it, in corpus order.
	table map[string][]string
	// keys holds the table's keys in order of first appearance.
	keys   []string
	tokens int
	src    Source
	logger *slog.Logger
}

// New creates an untrained Model holding corpus. Call Train before generating.
func New(corpus string, opts ...Option) *Model {
	m := &Model{
		corpus: corpus,
		state:  Untrained,
		src:    globalSource{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetLogger sets the logger for the Model. By default, all logs are discarded.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// Corpus returns the text the Model was created with.
func (m *Model) Corpus() string {
	return m.corpus
}

// State reports whether the Model has been trained.
func (m *Model) State() State {
	return m.state
}

// Followers returns a copy of the tokens observed after token, in corpus order.
// It returns nil for tokens that have no followers or are not in the corpus.
func (m *Model) Followers(token string) []string {
	followers, ok := m.table[token]
	if !ok {
		return nil
	}
	out := make([]string, len(followers))
	copy(out, followers)
	return out
}

// Keys returns every token that has at least one follower, in order of first appearance.
func (m *Model) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Table returns a deep copy of the transition table. An untrained Model returns nil.
func (m *Model) Table() map[string][]string {
	if m.state != Trained {
		return nil
	}
	out := make(map[string][]string, len(m.table))
	for k, v := range m.table {
		followers := make([]string, len(v))
		copy(followers, v)
		out[k] = followers
	}
	return out
}
