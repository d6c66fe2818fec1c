package swr

import "testing"

func TestParsePortfolio(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"us_stocks:80;us_bonds:20;", "us_stocks:80;us_bonds:20;", false},
		{"us_stocks:50;us_bonds:50", "us_stocks:50;us_bonds:50;", false},
		{" gold : 12.5 ;", "gold:12.5;", false},
		{"", "", true},
		{"us_stocks", "", true},
		{"us_stocks:abc;", "", true},
		{"us_stocks:-5;", "", true},
		{":10;", "", true},
	}
	for _, tt := range tests {
		p, err := ParsePortfolio(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePortfolio(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && p.String() != tt.want {
			t.Errorf("ParsePortfolio(%q) = %q want %q", tt.in, p.String(), tt.want)
		}
	}
}

func TestNormalizePortfolio(t *testing.T) {
	p := MustParsePortfolio("us_stocks:60;us_bonds:20;")
	if got := p.Normalize().String(); got != "us_stocks:75;us_bonds:25;" {
		t.Errorf("Normalize() = %q want us_stocks:75;us_bonds:25;", got)
	}
	full := MustParsePortfolio("us_stocks:80;us_bonds:20;")
	if got := full.Normalize().String(); got != full.String() {
		t.Errorf("Normalize() of a full portfolio = %q want unchanged", got)
	}
	if got := p.Assets(); len(got) != 2 || got[0] != "us_stocks" || got[1] != "us_bonds" {
		t.Errorf("Assets() = %v", got)
	}
}
