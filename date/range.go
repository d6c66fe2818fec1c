package date

import (
	"fmt"
	"iter"
	"strings"
)

// Range represents a range of months, boundaries included.
// A zero boundary is open: Range{} contains every month.
type Range struct{ From, To Month }

// NewRange returns the range [from, to].
func NewRange(from, to Month) Range { return Range{From: from, To: to} }

// Year returns the range covering a full calendar year.
func Year(y int) Range { return Range{From: New(y, 1), To: New(y, 12)} }

// Contains return true if the month is included in the range (boundaries included).
func (r Range) Contains(on Month) bool {
	if !r.From.IsZero() && on.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && on.After(r.To) {
		return false
	}
	return true
}

// Months iterates over every month of a closed range. Open ranges yield nothing.
func (r Range) Months() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		if r.From.IsZero() || r.To.IsZero() {
			return
		}
		for on := r.From; !on.After(r.To); on = on.Add(1) {
			if !yield(on) {
				return
			}
		}
	}
}

// String formats the range as "from..to", open boundaries are left empty.
func (r Range) String() string {
	var from, to string
	if !r.From.IsZero() {
		from = r.From.String()
	}
	if !r.To.IsZero() {
		to = r.To.String()
	}
	return from + ".." + to
}

// ParseRange parses "2000-01..2010-12", either side may be empty.
// A single month "2000-01" is the range of that month only.
func ParseRange(s string) (Range, error) {
	if s == "" || s == ".." {
		return Range{}, nil
	}
	from, to, ok := strings.Cut(s, "..")
	if !ok {
		m, err := Parse(s)
		if err != nil {
			return Range{}, err
		}
		return Range{m, m}, nil
	}
	var r Range
	var err error
	if from != "" {
		if r.From, err = Parse(from); err != nil {
			return Range{}, fmt.Errorf("invalid range start: %w", err)
		}
	}
	if to != "" {
		if r.To, err = Parse(to); err != nil {
			return Range{}, fmt.Errorf("invalid range end: %w", err)
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return Range{}, fmt.Errorf("invalid range %q: start is after end", s)
	}
	return r, nil
}
