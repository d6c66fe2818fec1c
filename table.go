package swr

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// RowReader reads a table one row at a time. Read returns io.EOF after the last row.
type RowReader interface {
	Read() ([]string, error)
}

// TableOptions configures how OpenTable reads a file.
type TableOptions struct {
	// Encoding of a CSV file, any WHATWG label ("latin1", "windows-1252", "utf-16le", ...).
	// Empty means UTF-8.
	Encoding string
	// Sheet of a workbook, the first sheet when empty.
	Sheet string
}

// Table is an open tabular file.
type Table struct {
	RowReader
	closer io.Closer
}

// Close releases the underlying file.
func (t *Table) Close() error { return t.closer.Close() }

// OpenTable opens a CSV file, or an xlsx workbook when path ends in ".xlsx".
func OpenTable(path string, opts TableOptions) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return openWorkbook(path, opts.Sheet)
	}

	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open table: %w", err)
	}
	var r io.Reader = f
	if enc != nil {
		r = transform.NewReader(f, enc.NewDecoder())
	}
	return &Table{RowReader: NewCSVReader(r), closer: f}, nil
}

// lookupEncoding returns nil for UTF-8, which needs no decoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// NewCSVReader returns a RowReader over comma separated values. Rows may have any number
// of fields; quoting follows RFC 4180. Each row is one line of input, unless a quoted
// field spans lines, and a blank line reads as a row without fields.
func NewCSVReader(r io.Reader) RowReader {
	return &csvRows{r: bufio.NewReader(r)}
}

type csvRows struct {
	r    *bufio.Reader
	line int
}

func (c *csvRows) Read() ([]string, error) {
	var record strings.Builder
	for {
		s, err := c.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if s != "" {
			c.line++
			record.WriteString(s)
		}
		eof := err != nil
		if eof && record.Len() == 0 {
			return nil, io.EOF
		}
		// An odd number of quotes means a quoted field continues on the next line.
		if !eof && strings.Count(record.String(), `"`)%2 == 1 {
			continue
		}
		row, err := parseRecord(record.String())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", c.line, err)
		}
		return row, nil
	}
}

func parseRecord(s string) ([]string, error) {
	if strings.TrimRight(s, "\r\n") == "" {
		return []string{}, nil
	}
	cr := csv.NewReader(strings.NewReader(s))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.Read()
}

// workbook reads the rows of a sheet. Spreadsheets drop trailing empty cells, so rows are
// padded to the widest row read so far: an empty cell reads as "" rather than a short row.
// An empty row stays empty, as a blank line does in a CSV file.
type workbook struct {
	file  *excelize.File
	rows  *excelize.Rows
	width int
}

func openWorkbook(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			f.Close()
			return nil, fmt.Errorf("workbook %q has no sheet", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	w := &workbook{file: f, rows: rows}
	return &Table{RowReader: w, closer: w}, nil
}

func (w *workbook) Read() ([]string, error) {
	if !w.rows.Next() {
		if err := w.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	row, err := w.rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(row) > w.width {
		w.width = len(row)
	}
	for len(row) > 0 && len(row) < w.width {
		row = append(row, "")
	}
	return row, nil
}

func (w *workbook) Close() error {
	return errors.Join(w.rows.Close(), w.file.Close())
}
