package swr

import "errors"

var (
	// ErrColumnNotFound is returned when no header cell names the requested column.
	ErrColumnNotFound = errors.New("did not find the column")
	// ErrDuplicateColumn is returned in strict mode when the header names the column twice.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrShortHeader is returned when the table ends before its header row.
	ErrShortHeader = errors.New("table ends before the header row")
	// ErrMalformedRow is returned for a data row too short to hold the extracted fields.
	ErrMalformedRow = errors.New("malformed row")
	// ErrNotANumber is returned when a value is not a decimal number once normalized.
	ErrNotANumber = errors.New("not a number")
	// ErrSimulation is returned when the simulator reports a failed simulation.
	ErrSimulation = errors.New("simulation failed")
)
