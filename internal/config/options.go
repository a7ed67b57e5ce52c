// Package config turns the command line into the options of one chainplan run.
// There are no config files or environment variables; flags are the only input.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"chainplan/internal/chain"
	apperrors "chainplan/internal/errors"
)

// ErrConflictingModes reports two output modes that cannot be combined.
var ErrConflictingModes = errors.New("conflicting options")

// Options holds everything parsed from the command line.
type Options struct {
	Output      string   // Output filename pattern (-o/--output)
	Plans       []string // Positional PLAN arguments, in chain order
	DryRun      bool     // Print the report instead of writing
	JSON        bool     // Print the chain as JSON instead of writing
	Interactive bool     // Preview in the TUI, write on request
	Verbose     bool
	Quiet       bool
	Version     bool
	Help        bool
}

// NewFlagSet returns the chainplan flags bound to opts.
func NewFlagSet(opts *Options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("chainplan", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.StringVarP(&opts.Output, "output", "o", "", "Output filename pattern (e.g. night.txt gives night_0000.txt, night_0001.txt, ...)")
	fs.BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print the chain that would be written and exit")
	fs.BoolVarP(&opts.JSON, "json", "j", false, "Print the chain as JSON and exit")
	fs.BoolVarP(&opts.Interactive, "interactive", "i", false, "Preview the chain in a terminal UI before writing")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every plan read and output written")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "Only report errors")
	fs.BoolVarP(&opts.Version, "version", "V", false, "Print version information")
	fs.BoolVarP(&opts.Help, "help", "h", false, "Show this help message")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: chainplan [options] PLAN PLAN...\n\n")
		fmt.Fprintf(stderr, "chainplan chains iTelescope observing plans. Each output is a copy of\n")
		fmt.Fprintf(stderr, "its plan ending with a #chain directive naming the next output, so the\n")
		fmt.Fprintf(stderr, "scheduler runs the plans in the order given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  chainplan -o night.txt m31.txt m42.txt     # Write night_0000.txt, night_0001.txt\n")
		fmt.Fprintf(stderr, "  chainplan -n -o night.txt a.txt b.txt a.txt  # Show the chain, write nothing\n")
		fmt.Fprintf(stderr, "  chainplan -i -o night.txt *.txt             # Preview, press w to write\n")
	}
	return fs
}

// Parse parses args (without the program name).
func Parse(args []string, stderr io.Writer) (Options, *pflag.FlagSet, error) {
	var opts Options
	fs := NewFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		return opts, fs, apperrors.Wrap(err, apperrors.CategoryUsage, "bad_flag", "see chainplan --help")
	}
	opts.Plans = fs.Args()
	return opts, fs, nil
}

// Validate checks the options of a run that will build a chain.
func (o Options) Validate() error {
	if o.Verbose && o.Quiet {
		return apperrors.Wrap(
			fmt.Errorf("%w: --verbose and --quiet", ErrConflictingModes),
			apperrors.CategoryUsage, "conflicting_options", "pick one of --verbose and --quiet",
		)
	}
	modes := 0
	for _, on := range []bool{o.DryRun, o.JSON, o.Interactive} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.Wrap(
			fmt.Errorf("%w: --dry-run, --json and --interactive are exclusive", ErrConflictingModes),
			apperrors.CategoryUsage, "conflicting_options", "pick a single output mode",
		)
	}
	if o.Output == "" {
		return apperrors.Wrap(chain.ErrMissingOutput, apperrors.CategoryUsage, "output_missing",
			"set the output filename pattern with -o/--output")
	}
	return nil
}

// LogLevel maps --verbose and --quiet to a slog level.
func (o Options) LogLevel() slog.Level {
	switch {
	case o.Verbose:
		return slog.LevelDebug
	case o.Quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
