package swr

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		convention DecimalConvention
		in         string
		want       string
	}{
		{ThousandsComma, "12,345", "12345"},
		{ThousandsComma, "1,234.56", "1234.56"},
		{ThousandsComma, "1,234.50", "1234.50"},
		{ThousandsComma, "1,234,567", "1234567"},
		{ThousandsComma, "500", "500"},
		{ThousandsComma, "1,234", "1234"},
		{DecimalComma, "12345,67", "12345.67"},
		{DecimalComma, "1234,56", "1234.56"},
		{DecimalComma, "1.234,56", "1234.56"},
		{DecimalComma, "1.234.567,8", "1234567.8"},
		{DecimalComma, "1,234", "1.234"},
		{DecimalComma, "500", "500"},
		{DecimalComma, "", ""},
	}
	for _, tt := range tests {
		if got := tt.convention.Normalize(tt.in); got != tt.want {
			t.Errorf("%v.Normalize(%q) = %q want %q", tt.convention, tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, c := range []DecimalConvention{ThousandsComma, DecimalComma} {
		for _, in := range []string{"1,234.56", "1.234,56", "1,000,000", "42"} {
			once := c.Normalize(in)
			if twice := c.Normalize(once); twice != once {
				t.Errorf("%v.Normalize is not idempotent on %q: %q then %q", c, in, once, twice)
			}
		}
	}
}

func TestParseDecimalConvention(t *testing.T) {
	tests := []struct {
		in      string
		want    DecimalConvention
		wantErr bool
	}{
		{"thousands-comma", ThousandsComma, false},
		{"EN", ThousandsComma, false},
		{"decimal-comma", DecimalComma, false},
		{"eu", DecimalComma, false},
		{"fr", ThousandsComma, true},
	}
	for _, tt := range tests {
		got, err := ParseDecimalConvention(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDecimalConvention(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDecimalConvention(%q) = %v want %v", tt.in, got, tt.want)
		}
	}

	var c DecimalConvention
	if err := c.Set(c.String()); err != nil || c != ThousandsComma {
		t.Errorf("Set(String()) round trip failed: %v, %v", c, err)
	}
	if err := c.Set("decimal-comma"); err != nil || c != DecimalComma {
		t.Errorf("Set(decimal-comma) = %v, %v", c, err)
	}
}

func TestParseValue(t *testing.T) {
	v, err := DecimalComma.ParseValue(" 1.234,5 ")
	if err != nil {
		t.Fatalf("ParseValue() unexpected error: %v", err)
	}
	if v.String() != "1234.5" {
		t.Errorf("ParseValue() = %v want 1234.5", v)
	}
	if _, err := ThousandsComma.ParseValue("n/a"); err == nil {
		t.Error("ParseValue(n/a) expected an error")
	}
}
