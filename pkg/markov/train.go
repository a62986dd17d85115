package markov

import (
	"log/slog"
	"strings"
)

// Train splits the corpus on runs of whitespace and builds the transition
// table: for every adjacent pair of tokens, the second is appended to the
// follower list of the first. Punctuation and case are kept as-is, so "cat"
// and "cat." are different tokens.
//
// Train cannot fail. A corpus with fewer than two tokens yields an empty
// table. Calling Train again rebuilds the same table from the same corpus.
// Train must not be called while other goroutines are generating.
func (m *Model) Train() {
	tokens := strings.Fields(m.corpus)

	table := make(map[string][]string)
	var keys []string
	for i := 0; i+1 < len(tokens); i++ {
		current, next := tokens[i], tokens[i+1]
		followers, seen := table[current]
		if !seen {
			keys = append(keys, current)
		}
		table[current] = append(followers, next)
	}

	m.table = table
	m.keys = keys
	m.tokens = len(tokens)
	m.state = Trained

	m.logger.Info("Training completed",
		slog.Int("tokens", len(tokens)),
		slog.Int("keys", len(keys)),
		slog.Int("transitions", max(len(tokens)-1, 0)),
	)
}
