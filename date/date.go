package date

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthFormat is the format used to represent months as strings.
const MonthFormat = "2006-01"

const readMonthFormat = "2006-1" // Permissive read format (allows single-digit month).

// Month represents a calendar month, the granularity of the simulator data.
type Month struct {
	y int
	m time.Month
}

// New returns a normalized Month for the given year and month.
// Months outside 1..12 roll over into the neighbouring years.
func New(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{t.Year(), t.Month()}
}

// ThisMonth returns the current month.
func ThisMonth() Month {
	y, m, _ := time.Now().Date()
	return New(y, m)
}

// Year returns the year of the month.
func (d Month) Year() int { return d.y }

// Month returns the calendar month.
func (d Month) Month() time.Month { return d.m }

// IsZero reports whether d is the zero Month.
func (d Month) IsZero() bool { return d == Month{} }

// Add returns the month i months after d (before if i is negative).
func (d Month) Add(i int) Month { return New(d.y, d.m+time.Month(i)) }

// Before reports whether the month d is before x.
func (d Month) Before(x Month) bool { return d.index() < x.index() }

// After reports whether the month d is after x.
func (d Month) After(x Month) bool { return d.index() > x.index() }

// Compare returns -1, 0 or +1 depending on d being before, equal or after x.
func (d Month) Compare(x Month) int {
	switch {
	case d.Before(x):
		return -1
	case d.After(x):
		return 1
	}
	return 0
}

// index is a monotonic month counter.
func (d Month) index() int { return d.y*12 + int(d.m) - 1 }

// String format the month in its standard format.
func (d Month) String() string {
	return time.Date(d.y, d.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Parse parses a Month from a string like "2025-07" or "2025-7".
func Parse(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return New(on.Year(), on.Month()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Month {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// FromFields builds a Month from separate month and year fields, the layout used by the
// simulator data files ("1,1971,...").
func FromFields(month, year string) (Month, error) {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid month number %q", month)
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return Month{}, fmt.Errorf("invalid year %q: %w", year, err)
	}
	return New(y, time.Month(m)), nil
}

// UnmarshalJSON implements the json specific way to unmarshall a month from a json string.
func (j *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Month) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Month pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
