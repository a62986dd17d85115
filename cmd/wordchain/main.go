package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CTAG07/wordchain/pkg/corpus"
	"github.com/urfave/cli/v3"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "wordchain",
		Usage:   "Train a word-level Markov chain on a corpus and generate text from it",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		Flags:   globalFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			generateCmd(),
			corpusCmd(),
			statsCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is the per-invocation state every command action starts from.
type env struct {
	config *Config
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
}

// setup loads the config file and applies global flag overrides.
func setup(cmd *cli.Command) (*env, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}
	if dbPath != "" {
		config.DatabasePath = dbPath
	}

	in := cmd.Root().Reader
	if in == nil {
		in = os.Stdin
	}
	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	errOut := cmd.Root().ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}

	logger := newLogger(errOut, config.LogLevel)
	logger.Debug("Configuration loaded",
		slog.String("config_path", configPath),
		slog.String("database_path", config.DatabasePath),
		slog.Int("default_count", config.DefaultCount),
	)
	return &env{config: config, logger: logger, in: in, out: out}, nil
}

// openStore opens the corpus database, creating it and its schema if needed.
// The returned function closes both the store and the database.
func (e *env) openStore() (*corpus.Store, func(), error) {
	path := e.config.DatabasePath
	if dir := filepath.Dir(strings.SplitN(path, "?", 2)[0]); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := initDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to setup corpus schema: %w", err)
	}
	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create corpus store: %w", err)
	}
	store.SetLogger(e.logger)

	return store, func() {
		store.Close()
		if err := db.Close(); err != nil {
			e.logger.Error("Failed to close database", "error", err)
		}
	}, nil
}

// readCorpus returns the corpus text selected by --file or --corpus,
// falling back to stdin when neither is set.
func (e *env) readCorpus(ctx context.Context) (string, error) {
	if corpusFile != "" && corpusName != "" {
		return "", errors.New("--file and --corpus cannot be used together")
	}

	switch {
	case corpusName != "":
		store, closeStore, err := e.openStore()
		if err != nil {
			return "", err
		}
		defer closeStore()
		c, err := store.Get(ctx, corpusName)
		if err != nil {
			return "", err
		}
		return c.Body, nil
	case corpusFile != "" && corpusFile != "-":
		data, err := os.ReadFile(corpusFile)
		if err != nil {
			return "", fmt.Errorf("failed to read corpus file: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(e.in)
		if err != nil {
			return "", fmt.Errorf("failed to read corpus from stdin: %w", err)
		}
		return string(data), nil
	}
}

func exitErr(err error) error {
	return cli.Exit(fmt.Sprintf("error: %v", err), 1)
}
