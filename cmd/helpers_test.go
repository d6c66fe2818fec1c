package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// redirect sends the command output to out and errOut, unstyled, until restore is called.
func redirect(out, errOut io.Writer) (restore func()) {
	oldOut, oldErr, oldPlain := stdout, stderr, *plain
	stdout, stderr, *plain = out, errOut, true
	return func() { stdout, stderr, *plain = oldOut, oldErr, oldPlain }
}

// setGlobal sets a global flag until restore is called.
func setGlobal[T any](p *T, v T) (restore func()) {
	old := *p
	*p = v
	return func() { *p = old }
}

// run executes c with args and returns its status, stdout and stderr.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	var out, errOut bytes.Buffer
	defer redirect(&out, &errOut)()
	status := c.Execute(context.Background(), f)
	return status, out.String(), errOut.String()
}

// writeFile writes content to name in a new temporary folder and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
