package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no corpus exists under the requested name.
	ErrNotFound = errors.New("corpus: not found")
	// ErrInvalidName is returned for an empty or whitespace-only corpus name.
	ErrInvalidName = errors.New("corpus: name must not be empty")
)

// Corpus is a named training text.
type Corpus struct {
	Name      string
	Body      string
	Tokens    int
	UpdatedAt time.Time
}

// Info describes a stored corpus without its body.
type Info struct {
	Name      string
	Tokens    int
	UpdatedAt time.Time
}

// SetupSchema initializes the corpora table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaCorpora = `
CREATE TABLE IF NOT EXISTS corpora (
    name TEXT PRIMARY KEY,
    body TEXT NOT NULL,
    token_count INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);
`
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaCorpora); err != nil {
		return fmt.Errorf("could not create schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Store reads and writes corpora using prepared statements.
type Store struct {
	db         *sql.DB
	stmtPut    *sql.Stmt
	stmtGet    *sql.Stmt
	stmtList   *sql.Stmt
	stmtRemove *sql.Stmt
	logger     *slog.Logger
	now        func() time.Time
}

// NewStore creates a Store over db, which must already have the schema from
// SetupSchema. It returns an error if any statement fails to prepare.
func NewStore(db *sql.DB) (*Store, error) {
	stmtPut, err := db.Prepare(`INSERT INTO corpora (name, body, token_count, updated_at) VALUES (?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET body = excluded.body, token_count = excluded.token_count, updated_at = excluded.updated_at;`)
	if err != nil {
		return nil, err
	}

	stmtGet, err := db.Prepare(`SELECT body, token_count, updated_at FROM corpora WHERE name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtList, err := db.Prepare(`SELECT name, token_count, updated_at FROM corpora ORDER BY name;`)
	if err != nil {
		return nil, err
	}

	stmtRemove, err := db.Prepare(`DELETE FROM corpora WHERE name = ?;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:         db,
		stmtPut:    stmtPut,
		stmtGet:    stmtGet,
		stmtList:   stmtList,
		stmtRemove: stmtRemove,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
	}, nil
}

// Close releases the prepared statements held by the Store.
func (s *Store) Close() {
	_ = s.stmtPut.Close()
	_ = s.stmtGet.Close()
	_ = s.stmtList.Close()
	_ = s.stmtRemove.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Put stores body under name, replacing any existing corpus with that name.
func (s *Store) Put(ctx context.Context, name, body string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	tokens := len(strings.Fields(body))
	if _, err := s.stmtPut.ExecContext(ctx, name, body, tokens, s.now().Unix()); err != nil {
		return fmt.Errorf("could not store corpus '%s': %w", name, err)
	}
	s.logger.InfoContext(ctx, "Corpus stored",
		slog.String("corpus_name", name),
		slog.Int("tokens", tokens),
	)
	return nil
}

// Append adds body to the end of the named corpus, separated by a newline,
// creating the corpus if it does not exist. The read and write happen in one
// transaction.
func (s *Store) Append(ctx context.Context, name, body string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	var existing string
	var tokenCount int
	var updatedAt int64
	err = tx.StmtContext(ctx, s.stmtGet).QueryRowContext(ctx, name).Scan(&existing, &tokenCount, &updatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		existing = ""
	case err != nil:
		return fmt.Errorf("could not read corpus '%s': %w", name, err)
	default:
		existing += "\n"
	}

	combined := existing + body
	tokens := len(strings.Fields(combined))
	if _, err = tx.StmtContext(ctx, s.stmtPut).ExecContext(ctx, name, combined, tokens, s.now().Unix()); err != nil {
		return fmt.Errorf("could not store corpus '%s': %w", name, err)
	}

	s.logger.InfoContext(ctx, "Corpus appended",
		slog.String("corpus_name", name),
		slog.Int("tokens_added", tokens-tokenCount),
		slog.Int("tokens", tokens),
	)
	return tx.Commit()
}

// Get returns the corpus stored under name, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (Corpus, error) {
	c := Corpus{Name: name}
	var updatedAt int64
	err := s.stmtGet.QueryRowContext(ctx, name).Scan(&c.Body, &c.Tokens, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Corpus{}, fmt.Errorf("corpus '%s': %w", name, ErrNotFound)
		}
		return Corpus{}, fmt.Errorf("could not read corpus '%s': %w", name, err)
	}
	c.UpdatedAt = time.Unix(updatedAt, 0)
	return c, nil
}

// List returns every stored corpus ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.stmtList.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	infos := make([]Info, 0)
	for rows.Next() {
		var info Info
		var updatedAt int64
		if err = rows.Scan(&info.Name, &info.Tokens, &updatedAt); err != nil {
			return nil, err
		}
		info.UpdatedAt = time.Unix(updatedAt, 0)
		infos = append(infos, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

// Remove deletes the corpus stored under name, or returns ErrNotFound.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.stmtRemove.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("could not remove corpus '%s': %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("corpus '%s': %w", name, ErrNotFound)
	}
	s.logger.InfoContext(ctx, "Corpus removed", slog.String("corpus_name", name))
	return nil
}
