package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/google/subcommands"
	"github.com/swr-analysis/swr"
)

// notFoundMessage is the diagnostic printed when the column is missing from the header.
const notFoundMessage = "Did not find the column"

type convertCmd struct {
	skip       int
	convention swr.DecimalConvention
	strict     bool
	sheet      string
	encoding   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "extract a numeric column from a CSV or xlsx export" }
func (*convertCmd) Usage() string {
	return `swa convert [-skip N] [-decimal C] [-strict] [-sheet S] [-encoding E] <file> <column>

  Prints "first,second,number" for each data row of <file>, where number is the
  <column> cell with its thousands separators removed. Stops at the first empty cell.
  See 'swa topic convert'.

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.skip, "skip", swr.DefaultHeaderRowsToSkip, "number of rows before the header")
	f.Var(&c.convention, "decimal", "number convention: thousands-comma or decimal-comma")
	f.BoolVar(&c.strict, "strict", false, "reject duplicate column names and invalid numbers")
	f.StringVar(&c.sheet, "sheet", "", "sheet of an xlsx workbook, the first one by default")
	f.StringVar(&c.encoding, "encoding", "", "character encoding of a CSV file, such as latin1")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(stderr, "convert requires exactly two arguments: <file> <column>")
		return subcommands.ExitUsageError
	}
	path, column := f.Arg(0), f.Arg(1)

	e := &swr.Extractor{
		HeaderRowsToSkip: c.skip,
		Convention:       c.convention,
		Strict:           c.strict,
		Validate:         c.strict,
	}
	opts := swr.TableOptions{Encoding: c.encoding, Sheet: c.sheet}

	n, err := e.ExtractFile(stdout, path, opts, column)
	switch {
	case errors.Is(err, swr.ErrColumnNotFound):
		fmt.Fprintln(stderr, notFoundMessage)
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	slog.Debug("converted", "file", path, "column", column, "records", n)
	return subcommands.ExitSuccess
}
