package date

import (
	"encoding/json"
	"testing"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		year  int
		month int
		want  string
	}{
		{2025, 7, "2025-07"},
		{2025, 13, "2026-01"},
		{2025, 0, "2024-12"},
	}
	for _, tt := range tests {
		if got := New(tt.year, timeMonth(tt.month)).String(); got != tt.want {
			t.Errorf("New(%d, %d) = %q want %q", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("1971-1")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if m != New(1971, 1) {
		t.Errorf("Parse(1971-1) = %v want 1971-01", m)
	}
	if _, err := Parse("January"); err == nil {
		t.Error("Parse(January) expected an error")
	}
}

func TestFromFields(t *testing.T) {
	m, err := FromFields(" 3", "1999")
	if err != nil {
		t.Fatalf("FromFields() unexpected error: %v", err)
	}
	if m.String() != "1999-03" {
		t.Errorf("FromFields(3, 1999) = %v want 1999-03", m)
	}
	for _, bad := range [][2]string{{"0", "1999"}, {"13", "1999"}, {"x", "1999"}, {"1", "y"}} {
		if _, err := FromFields(bad[0], bad[1]); err == nil {
			t.Errorf("FromFields(%q, %q) expected an error", bad[0], bad[1])
		}
	}
}

func TestAddAndCompare(t *testing.T) {
	m := New(2020, 11)
	if got := m.Add(3); got != New(2021, 2) {
		t.Errorf("Add(3) = %v want 2021-02", got)
	}
	if got := m.Add(-11); got != New(2019, 12) {
		t.Errorf("Add(-11) = %v want 2019-12", got)
	}
	if !m.Before(m.Add(1)) || !m.After(m.Add(-1)) || m.Compare(m) != 0 {
		t.Error("Before/After/Compare are inconsistent")
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(New(2001, 9))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2001-09"` {
		t.Errorf("Marshal = %s want \"2001-09\"", b)
	}
	var m Month
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m != New(2001, 9) {
		t.Errorf("Unmarshal = %v want 2001-09", m)
	}
}
