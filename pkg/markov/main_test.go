package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const catCorpus = "the cat sat on the mat the cat ran"

// sequenceSource is a Source that returns a fixed sequence of picks, each
// reduced modulo n. It fails the test when the sequence runs out.
type sequenceSource struct {
	t     testing.TB
	picks []int
	calls []int // the n passed to each call
}

func (s *sequenceSource) IntN(n int) int {
	s.t.Helper()
	if len(s.picks) == 0 {
		s.t.Fatalf("sequenceSource exhausted (IntN(%d) called after %d picks)", n, len(s.calls))
	}
	pick := s.picks[0]
	s.picks = s.picks[1:]
	s.calls = append(s.calls, n)
	return pick % n
}

// setupTrainedModel creates and trains a Model over corpus using the given picks.
func setupTrainedModel(t *testing.T, corpus string, picks ...int) (*Model, *sequenceSource) {
	t.Helper()
	src := &sequenceSource{t: t, picks: picks}
	m := New(corpus, WithSource(src))
	m.Train()
	if m.State() != Trained {
		t.Fatalf("setup: expected model to be trained, got %v", m.State())
	}
	return m, src
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
