package swr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/shopspring/decimal"
)

// DefaultHeaderRowsToSkip is the number of metadata rows preceding the header in the
// spreadsheet exports the extractor was written for.
const DefaultHeaderRowsToSkip = 4

// Record is one extracted row: the two leading fields and the normalized target value.
type Record struct {
	First  string
	Second string
	Number string
}

// String formats the record as a comma joined line, without quoting.
func (r Record) String() string { return r.First + "," + r.Second + "," + r.Number }

// Extractor pulls a single named column out of a table, normalizing its numbers.
//
// The table layout is: HeaderRowsToSkip rows of metadata, one header row naming the
// columns, then data rows. Data ends at the first row whose target cell is empty.
type Extractor struct {
	HeaderRowsToSkip int
	Convention       DecimalConvention
	// Strict fails when the header names the column more than once, instead of using the
	// first match.
	Strict bool
	// Validate fails when a normalized value is not a decimal number.
	Validate bool
}

// NewExtractor returns an extractor with the default layout and the thousands-comma
// convention.
func NewExtractor() *Extractor {
	return &Extractor{HeaderRowsToSkip: DefaultHeaderRowsToSkip}
}

// ColumnIndex returns the position of the first header cell equal to column.
// Matching is exact and case sensitive.
func ColumnIndex(header []string, column string, strict bool) (int, error) {
	index := -1
	for i, name := range header {
		if name != column {
			continue
		}
		if index < 0 {
			index = i
			if !strict {
				break
			}
			continue
		}
		return -1, fmt.Errorf("%w %q at positions %d and %d", ErrDuplicateColumn, column, index, i)
	}
	if index < 0 {
		return -1, fmt.Errorf("%w %q", ErrColumnNotFound, column)
	}
	return index, nil
}

// header skips the metadata rows, blank lines included, and resolves the target column.
func (e *Extractor) header(rows RowReader, column string) (int, error) {
	if e.HeaderRowsToSkip < 0 {
		return -1, fmt.Errorf("invalid number of metadata rows %d", e.HeaderRowsToSkip)
	}
	for i := 0; ; i++ {
		row, err := rows.Read()
		if errors.Is(err, io.EOF) {
			return -1, fmt.Errorf("%w: only %d rows, want %d metadata rows and a header", ErrShortHeader, i, e.HeaderRowsToSkip)
		}
		if err != nil {
			return -1, fmt.Errorf("cannot read row %d: %w", i+1, err)
		}
		if i == e.HeaderRowsToSkip {
			return ColumnIndex(row, column, e.Strict)
		}
	}
}

// Records returns the lazy sequence of records extracted from rows.
//
// The header is resolved when the sequence is first iterated. Any error is yielded once,
// with a zero Record, and ends the sequence.
func (e *Extractor) Records(rows RowReader, column string) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		index, err := e.header(rows, column)
		if err != nil {
			yield(Record{}, err)
			return
		}
		slog.Debug("resolved column", "column", column, "index", index)

		line := e.HeaderRowsToSkip + 1
		for {
			row, err := rows.Read()
			line++
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Record{}, fmt.Errorf("cannot read row %d: %w", line, err))
				return
			}
			if len(row) <= index || len(row) < 2 {
				yield(Record{}, fmt.Errorf("%w: row %d has %d fields, column %q is field %d", ErrMalformedRow, line, len(row), column, index+1))
				return
			}
			cell := row[index]
			if cell == "" {
				slog.Debug("empty cell, end of data", "row", line)
				return
			}
			number := e.Convention.Normalize(cell)
			if e.Validate {
				if _, err := decimal.NewFromString(number); err != nil {
					yield(Record{}, fmt.Errorf("%w: row %d: %q", ErrNotANumber, line, cell))
					return
				}
			}
			if !yield(Record{First: row[0], Second: row[1], Number: number}, nil) {
				return
			}
		}
	}
}

// Extract writes one line per extracted record to w and returns the number of lines.
//
// Nothing is written when the column cannot be resolved. On a later error, the lines of
// the rows before the failing one have been written.
func (e *Extractor) Extract(w io.Writer, rows RowReader, column string) (n int, err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()
	for rec, err := range e.Records(rows, column) {
		if err != nil {
			return n, err
		}
		if _, err := fmt.Fprintln(bw, rec.String()); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// ExtractFile opens path with opts and runs Extract on it.
func (e *Extractor) ExtractFile(w io.Writer, path string, opts TableOptions, column string) (int, error) {
	t, err := OpenTable(path, opts)
	if err != nil {
		return 0, err
	}
	defer t.Close()
	return e.Extract(w, t, column)
}
