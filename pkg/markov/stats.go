package markov

// Stats holds aggregated statistics for a trained Model.
type Stats struct {
	State          State // Whether the model has been trained
	Tokens         int   // The number of tokens in the corpus
	Vocabulary     int   // The number of distinct tokens in the corpus
	Keys           int   // The number of distinct tokens with at least one follower
	Transitions    int   // The sum of all follower list lengths; one per adjacent pair
	TerminalTokens int   // The number of distinct tokens that never have a follower
}

// Stats returns a snapshot of the Model's statistics. An untrained Model
// reports only its State.
func (m *Model) Stats() Stats {
	if m.state != Trained {
		return Stats{State: m.state}
	}

	// A single-token corpus has a vocabulary of one and no transitions.
	if m.tokens == 1 {
		return Stats{State: m.state, Tokens: 1, Vocabulary: 1, TerminalTokens: 1}
	}

	vocab := make(map[string]struct{}, len(m.table)+1)
	transitions := 0
	for key, followers := range m.table {
		vocab[key] = struct{}{}
		transitions += len(followers)
		for _, f := range followers {
			vocab[f] = struct{}{}
		}
	}

	return Stats{
		State:          m.state,
		Tokens:         m.tokens,
		Vocabulary:     len(vocab),
		Keys:           len(m.table),
		Transitions:    transitions,
		TerminalTokens: len(vocab) - len(m.table),
	}
}
