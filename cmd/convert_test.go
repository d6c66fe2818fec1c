package cmd

import (
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const prices = `Monthly prices
Exported 2024-02-01
Source: broker
Currency: USD
Date,Label,Price
2024-01,Fund A,"1,234.50"
2024-02,Fund A,"1,301.25"
,Total,
2024-03,Fund A,"1,400.00"
`

func TestConvert(t *testing.T) {
	path := writeFile(t, "prices.csv", prices)

	status, out, errOut := run(t, &convertCmd{}, path, "Price")
	if status != subcommands.ExitSuccess {
		t.Fatalf("convert status = %v, stderr: %s", status, errOut)
	}
	want := "2024-01,Fund A,1234.50\n2024-02,Fund A,1301.25\n"
	if out != want {
		t.Errorf("convert output = %q want %q", out, want)
	}
}

func TestConvertColumnNotFound(t *testing.T) {
	path := writeFile(t, "prices.csv", prices)

	status, out, errOut := run(t, &convertCmd{}, path, "price")
	if status != subcommands.ExitFailure {
		t.Errorf("convert status = %v want %v", status, subcommands.ExitFailure)
	}
	if out != "" {
		t.Errorf("convert printed %q, want nothing", out)
	}
	if strings.TrimSpace(errOut) != "Did not find the column" {
		t.Errorf("convert stderr = %q", errOut)
	}
}

func TestConvertFlags(t *testing.T) {
	path := writeFile(t, "prix.csv", "Date,Label,Prix\n2024-01,Fonds B,\"1.234,56\"\n")

	status, out, errOut := run(t, &convertCmd{}, "-skip", "0", "-decimal", "decimal-comma", path, "Prix")
	if status != subcommands.ExitSuccess {
		t.Fatalf("convert status = %v, stderr: %s", status, errOut)
	}
	if want := "2024-01,Fonds B,1234.56\n"; out != want {
		t.Errorf("convert output = %q want %q", out, want)
	}
}

func TestConvertStrict(t *testing.T) {
	path := writeFile(t, "dup.csv", "Date,Price,Price\n2024-01,1,2\n")

	status, _, errOut := run(t, &convertCmd{}, "-skip", "0", "-strict", path, "Price")
	if status != subcommands.ExitFailure {
		t.Errorf("convert -strict status = %v want %v", status, subcommands.ExitFailure)
	}
	if !strings.Contains(errOut, "Error:") {
		t.Errorf("convert -strict stderr = %q", errOut)
	}

	status, out, _ := run(t, &convertCmd{}, "-skip", "0", path, "Price")
	if status != subcommands.ExitSuccess || out != "2024-01,1,1\n" {
		t.Errorf("convert = %v %q, want the first Price column", status, out)
	}
}

func TestConvertUsage(t *testing.T) {
	status, _, _ := run(t, &convertCmd{}, "only-a-file.csv")
	if status != subcommands.ExitUsageError {
		t.Errorf("convert status = %v want %v", status, subcommands.ExitUsageError)
	}
}

func TestConvertMissingFile(t *testing.T) {
	status, out, errOut := run(t, &convertCmd{}, "does-not-exist.csv", "Price")
	if status != subcommands.ExitFailure || out != "" {
		t.Errorf("convert = %v %q, want a failure and no output", status, out)
	}
	if !strings.HasPrefix(errOut, "Error:") {
		t.Errorf("convert stderr = %q", errOut)
	}
}
