// Package store keeps monthly series and their changes in a sqlite database, so they can
// be queried with SQL alongside the simulator's data files.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/swr-analysis/swr"
	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS points (
	series  TEXT    NOT NULL,
	year    INTEGER NOT NULL,
	month   INTEGER NOT NULL,
	value   TEXT    NOT NULL,
	diff    TEXT,
	percent TEXT,
	PRIMARY KEY (series, year, month)
);`

// Point is a row of the points table. Decimal values are stored as text to stay exact.
type Point struct {
	Series  string         `db:"series"`
	Year    int            `db:"year"`
	Month   int            `db:"month"`
	Value   string         `db:"value"`
	Diff    sql.NullString `db:"diff"`
	Percent sql.NullString `db:"percent"`
}

// Store is a series database.
type Store struct {
	db *sqlx.DB
}

// Open opens, creating it if needed, the database at path. ":memory:" is a private
// in-memory database.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	// one connection: an in-memory database exists per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create schema in %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Import replaces the points of the series by its values and monthly changes.
// It returns the number of points written.
func (s *Store) Import(ctx context.Context, series *swr.Series) (n int, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM points WHERE series = ?`, series.Name); err != nil {
		return 0, fmt.Errorf("cannot clear series %q: %w", series.Name, err)
	}

	for _, c := range series.Changes() {
		p := Point{
			Series: series.Name,
			Year:   c.Month.Year(),
			Month:  int(c.Month.Month()),
			Value:  c.Value.String(),
		}
		if c.HasDiff {
			p.Diff = sql.NullString{String: c.Diff.String(), Valid: true}
		}
		if c.HasPercent {
			p.Percent = sql.NullString{String: c.Percent.StringFixed(6), Valid: true}
		}
		_, err = tx.NamedExecContext(ctx, `INSERT INTO points (series, year, month, value, diff, percent)
			VALUES (:series, :year, :month, :value, :diff, :percent)`, p)
		if err != nil {
			return 0, fmt.Errorf("cannot insert %s %d-%02d: %w", series.Name, p.Year, p.Month, err)
		}
		n++
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	slog.Debug("imported series", "series", series.Name, "points", n)
	return n, nil
}

// Points returns the points of a series in chronological order.
func (s *Store) Points(ctx context.Context, series string) ([]Point, error) {
	var points []Point
	err := s.db.SelectContext(ctx, &points,
		`SELECT series, year, month, value, diff, percent FROM points WHERE series = ? ORDER BY year, month`, series)
	if err != nil {
		return nil, fmt.Errorf("cannot read series %q: %w", series, err)
	}
	return points, nil
}

// Series returns the names of the imported series, sorted.
func (s *Store) Series(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names, `SELECT DISTINCT series FROM points ORDER BY series`); err != nil {
		return nil, err
	}
	return names, nil
}
