package checker

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hakanyildizphd/vplc/internal/apperr"
	"github.com/hakanyildizphd/vplc/pkg/config/env"
)

// Process exit codes. The orchestrator treats any non-zero exit as an
// infrastructure problem needing operator attention, never as a score.
const (
	ExitOK    = 0
	ExitInfra = 1
	ExitUsage = 2
)

// CLI is the entrypoint shared by the checker binaries; each variant
// supplies its session constructor and default lookahead.
//
// Invocation: <name> [-settings file] <input> <claimed_output> <correct_output> <hidden>
// The input file is accepted for interface compatibility with the rest of
// the checker family and is never opened.
type CLI[V any] struct {
	Name             string
	NewSession       func(claimed, reference io.Reader, cfg Config) *Session[V]
	DefaultLookahead int
}

type cliArgs struct {
	settingsPath string
	input        string
	claimed      string
	reference    string
	hidden       bool
}

// Run executes one grading invocation and returns the process exit code.
// Graded outcomes (match, mismatch, unreadable submission) go to stdout;
// environment faults go to the log and produce no verdict line.
func (c CLI[V]) Run(args []string, stdout io.Writer) int {
	parsed, err := c.parseArgs(args)
	if err != nil {
		slog.Error("Invalid invocation", "checker", c.Name, "error", err)
		return ExitUsage
	}

	if err := env.LoadDotEnv(); err != nil {
		slog.Error("Failed to load environment file", "error", err)
		return ExitUsage
	}

	settings := DefaultSettings(c.DefaultLookahead)
	if parsed.settingsPath != "" {
		settings, err = LoadSettings(parsed.settingsPath, settings)
		if err != nil {
			slog.Error("Failed to load settings", "path", parsed.settingsPath, "error", err)
			return ExitUsage
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		slog.Error("Invalid settings override", "error", err)
		return ExitUsage
	}

	claimed, err := os.Open(parsed.claimed)
	if err != nil {
		// An unreadable submission output is the submitter's fault and
		// scores as an ordinary failure.
		fmt.Fprintln(stdout, Verdict{Passed: false, Message: "Error opening the output file."})
		return ExitOK
	}
	defer claimed.Close()

	reference, err := os.Open(parsed.reference)
	if err != nil {
		slog.Error("Reference output unreadable", "path", parsed.reference, "error", err)
		return ExitInfra
	}
	defer reference.Close()

	session := c.NewSession(claimed, reference, Config{
		Hidden:     parsed.hidden,
		ShowDiff:   settings.ShowDiff,
		ShowOutput: settings.ShowOutput,
		Lookahead:  settings.Lookahead,
	})
	result, err := session.Run()
	if err != nil {
		slog.Error("Grading aborted", "checker", c.Name, "error", err)
		return ExitInfra
	}

	fmt.Fprintln(stdout, result.Verdict)
	if result.Echo != "" {
		fmt.Fprintln(stdout, result.Echo)
	}
	return ExitOK
}

func (c CLI[V]) parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.StringVar(&parsed.settingsPath, "settings", "", "Path to checker settings YAML")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [-settings file] <input> <claimed_output> <correct_output> <hidden(0|1)>\n", c.Name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}

	rest := fs.Args()
	if len(rest) != 4 {
		return cliArgs{}, apperr.NewUsage(fmt.Sprintf("expected 4 positional arguments, got %d", len(rest)))
	}
	parsed.input = rest[0]
	parsed.claimed = rest[1]
	parsed.reference = rest[2]

	switch rest[3] {
	case "0":
		parsed.hidden = false
	case "1":
		parsed.hidden = true
	default:
		return cliArgs{}, apperr.NewUsage(fmt.Sprintf("hidden flag must be \"0\" or \"1\", got %q", rest[3]))
	}
	return parsed, nil
}
