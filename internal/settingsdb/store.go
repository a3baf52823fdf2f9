// Package settingsdb reads the application settings database for diagnostics.
// It never writes.
package settingsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound reports a database path that does not exist.
	ErrNotFound = errors.New("database file not found")
	// ErrInvalidTable reports a table name that is not a plain identifier.
	ErrInvalidTable = errors.New("invalid table name")
	// ErrNoTable reports a table that is absent from the database.
	ErrNoTable = errors.New("table not found")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Column describes one table column as reported by PRAGMA table_info.
type Column struct {
	CID        int    `yaml:"cid"`
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	NotNull    bool   `yaml:"not_null"`
	PrimaryKey bool   `yaml:"primary_key"`
}

// Record is one row with its column names, in table order.
type Record struct {
	Columns []string
	Values  []any
}

// Value returns the value of the named column.
func (r Record) Value(name string) (any, bool) {
	for i, col := range r.Columns {
		if strings.EqualFold(col, name) {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Store is a read-only handle on a settings database.
type Store struct {
	path  string
	sqlDB *sql.DB
}

// Open opens an existing SQLite database in query-only mode.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cleanPath)
		}
		return nil, fmt.Errorf("stat %s: %w", cleanPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: path is a directory", cleanPath)
	}
	dsn := "file:" + (&url.URL{Path: filepath.ToSlash(cleanPath)}).EscapedPath() + "?_pragma=query_only(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{path: cleanPath, sqlDB: sqlDB}, nil
}

// Path returns the cleaned database path.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Columns returns the schema of table.
func (s *Store) Columns(ctx context.Context, table string) ([]Column, error) {
	if err := s.ready(ctx, table); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var (
			col     Column
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&col.CID, &col.Name, &col.Type, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan table info: %w", err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0
		cols = append(cols, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTable, table)
	}
	return cols, nil
}

// First returns the first row of table. The boolean is false when the table
// is empty.
func (s *Store) First(ctx context.Context, table string) (Record, bool, error) {
	recs, err := s.Records(ctx, table, 1)
	if err != nil {
		return Record{}, false, err
	}
	if len(recs) == 0 {
		return Record{}, false, nil
	}
	return recs[0], true, nil
}

// Records returns up to limit rows of table; limit <= 0 returns every row.
func (s *Store) Records(ctx context.Context, table string, limit int) ([]Record, error) {
	if _, err := s.Columns(ctx, table); err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT * FROM %s", table)
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	var recs []Record
	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		recs = append(recs, Record{Columns: names, Values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return recs, nil
}

func (s *Store) ready(ctx context.Context, table string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("settings store is not open")
	}
	if !identRe.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return nil
}
