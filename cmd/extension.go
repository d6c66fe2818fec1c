package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension runs the external swa-<subcommand> binary found in the PATH, passing the
// global flags as SWA_* environment variables.
//
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "swa-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("extension not found", "command", name, "error", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		EnvAPIURL+"="+*apiURL,
		EnvDataDir+"="+*dataDir,
		EnvDB+"="+*dbFile,
		EnvCurrency+"="+*currency,
		EnvLogLevel+"="+*logLevel,
		EnvLogFormat+"="+*logFormat,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
