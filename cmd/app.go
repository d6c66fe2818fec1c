// Package cmd implements the swa command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/swr-analysis/swr/swrapi"
)

// Commands lists the swa subcommands.
var Commands = []subcommands.Command{
	&convertCmd{},
	&changesCmd{},
	&importCmd{},
	&simulateCmd{},
	&balanceCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	apiURL    = flag.String("api", swrapi.DefaultURL, "URL of the simulation service")
	dataDir   = flag.String("data", "stock-data", "folder of the historical series <name>.csv")
	dbFile    = flag.String("db", "swr.db", "sqlite database of imported series")
	currency  = flag.String("currency", "USD", "currency of terminal values")
	logLevel  = flag.String("log-level", "info", "log level: debug, info, warn or error")
	logFormat = flag.String("log-format", "text", "log format: text or json")
	plain     = flag.Bool("plain", false, "print markdown as is, without terminal styling")
	Verbose   = flag.Bool("v", false, "verbose: log at debug level")
)

// Environment variables, used for the global flags that are not set on the command line.
// They are also passed to extensions.
const (
	EnvAPIURL    = "SWA_API_URL"
	EnvDataDir   = "SWA_DATA_DIR"
	EnvDB        = "SWA_DB"
	EnvCurrency  = "SWA_CURRENCY"
	EnvLogLevel  = "SWA_LOG_LEVEL"
	EnvLogFormat = "SWA_LOG_FORMAT"
	EnvVerbose   = "SWA_VERBOSE"
)

// envFlags binds global flags to their environment variable.
var envFlags = []struct{ flag, env string }{
	{"api", EnvAPIURL},
	{"data", EnvDataDir},
	{"db", EnvDB},
	{"currency", EnvCurrency},
	{"log-level", EnvLogLevel},
	{"log-format", EnvLogFormat},
	{"v", EnvVerbose},
}

// command output, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LoadEnv loads environment variables from .env files, the one in the current directory
// by default. Variables already set are kept, and a missing file is not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot load %s: %w", file, err)
		}
	}
	return nil
}

// ApplyEnv sets the global flags of set that were not given on the command line from
// their environment variable. It must be called after set is parsed.
func ApplyEnv(set *flag.FlagSet) error {
	given := make(map[string]bool)
	set.Visit(func(f *flag.Flag) { given[f.Name] = true })

	var errs []error
	for _, b := range envFlags {
		value := os.Getenv(b.env)
		if given[b.flag] || value == "" || set.Lookup(b.flag) == nil {
			continue
		}
		if err := set.Set(b.flag, value); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q: %w", b.env, value, err))
		}
	}
	return errors.Join(errs...)
}

// SetupLogging configures the default slog logger on stderr.
//
// Level is one of "debug", "info", "warn", "error"; format is "text" or "json".
func SetupLogging(level, format string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	if *Verbose {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(stderr, opts)
	case "text", "":
		handler = slog.NewTextHandler(stderr, opts)
	default:
		return fmt.Errorf("invalid log format %q, want text or json", format)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// Setup applies the environment to the parsed global flags and configures logging.
func Setup(set *flag.FlagSet) error {
	if err := ApplyEnv(set); err != nil {
		return err
	}
	return SetupLogging(*logLevel, *logFormat)
}

// printMarkdown prints a markdown document, styled for the terminal unless -plain.
func printMarkdown(md string) {
	if !*plain {
		if out, err := glamour.Render(md, "auto"); err == nil {
			md = out
		} else {
			slog.Debug("cannot render markdown", "error", err)
		}
	}
	fmt.Fprint(stdout, md)
}

// cacheDir is where simulation responses are kept.
func cacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(dir, "swa")
}

// newClient returns a client of the simulation service set by the global flags.
func newClient() *swrapi.Client {
	c := swrapi.New(*apiURL)
	dir := cacheDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("simulation cache disabled", "error", err)
		return c
	}
	return c.WithDailyCache(dir)
}
