package markov

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestModelState(t *testing.T) {
	m := New(catCorpus)
	if got := m.State(); got != Untrained {
		t.Fatalf("expected Untrained, got %v", got)
	}
	if m.Table() != nil {
		t.Error("expected an untrained model to have no table")
	}
	if m.Corpus() != catCorpus {
		t.Errorf("expected corpus %q, got %q", catCorpus, m.Corpus())
	}

	m.Train()
	if got := m.State(); got != Trained {
		t.Fatalf("expected Trained, got %v", got)
	}
	m.Train()
	if got := m.State(); got != Trained {
		t.Errorf("expected model to stay Trained after retraining, got %v", got)
	}

	if Untrained.String() != "untrained" || Trained.String() != "trained" {
		t.Errorf("unexpected state names %q and %q", Untrained, Trained)
	}
}

func TestModelCopies(t *testing.T) {
	m, _ := setupTrainedModel(t, catCorpus)

	followers := m.Followers("the")
	followers[0] = "dog"
	if got := m.Followers("the"); !reflect.DeepEqual(got, []string{"cat", "mat", "cat"}) {
		t.Errorf("modifying Followers() result changed the model: %v", got)
	}

	table := m.Table()
	table["cat"] = append(table["cat"], "dog")
	delete(table, "the")
	if got := m.Followers("cat"); !reflect.DeepEqual(got, []string{"sat", "ran"}) {
		t.Errorf("modifying Table() result changed the model: %v", got)
	}
	if m.Followers("the") == nil {
		t.Error("deleting from Table() result removed a key from the model")
	}

	keys := m.Keys()
	keys[0] = "dog"
	if m.Keys()[0] != "the" {
		t.Error("modifying Keys() result changed the model")
	}
}

func TestWithSourceNil(t *testing.T) {
	m := New(catCorpus, WithSource(nil))
	m.Train()
	if _, err := m.Generate(); err != nil {
		t.Fatalf("expected a nil source to keep the default, got %v", err)
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	m := New(catCorpus, WithSource(&sequenceSource{t: t, picks: []int{1}}))
	m.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	m.SetLogger(nil) // ignored

	m.Train()
	if _, err := m.Generate(WithSeed("cat"), WithCount(5)); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	logs := buf.String()
	for _, want := range []string{"Training completed", "tokens=9", "keys=5", "transitions=8", "dead-end", "last_token=ran"} {
		if !strings.Contains(logs, want) {
			t.Errorf("expected logs to contain %q, got:\n%s", want, logs)
		}
	}
}
