package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"chainplan/internal/chain"
	"chainplan/internal/config"
	apperrors "chainplan/internal/errors"
	"chainplan/internal/logs"
	"chainplan/internal/model"
	"chainplan/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := config.Parse(args, stderr)
	if err != nil {
		return reportError(stderr, err)
	}

	if opts.Help {
		fs.Usage()
		return exitOK
	}

	if opts.Version {
		fmt.Fprintf(stdout, "chainplan version %s\n", model.Version)
		return exitOK
	}

	if err := opts.Validate(); err != nil {
		return reportError(stderr, err)
	}

	logs.SetLevel(opts.LogLevel())
	logger := logs.New(stderr)

	c, err := chain.Build(opts.Plans, opts.Output)
	if err != nil {
		return reportError(stderr, err)
	}
	builder := chain.NewBuilder(logger)

	switch {
	case opts.DryRun:
		fmt.Fprint(stdout, chain.GenerateReport(c, opts.Verbose))
		return exitOK
	case opts.JSON:
		return runJSONMode(stdout, stderr, c)
	case opts.Interactive:
		return runTuiMode(stdout, stderr, c, builder, opts.Quiet)
	}

	result, err := builder.Write(c)
	if err != nil {
		logger.Debug("chain aborted", "written", result.Written, "error", err)
		return reportError(stderr, err)
	}
	if !opts.Quiet {
		fmt.Fprintln(stdout, chain.Summary(result))
	}
	return exitOK
}

func runJSONMode(stdout, stderr io.Writer, c model.Chain) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return reportError(stderr, err)
	}
	return exitOK
}

func runTuiMode(stdout, stderr io.Writer, c model.Chain, builder *chain.Builder, quiet bool) int {
	m := tui.InitialModel(c, builder)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return exitIO
	}

	am, ok := final.(tui.AppModel)
	if !ok {
		return exitOK
	}
	if err := am.Failed(); err != nil {
		return reportError(stderr, err)
	}
	if am.Written && !quiet {
		fmt.Fprintln(stdout, chain.Summary(am.Result))
	}
	return exitOK
}

// reportError prints err and its hint and returns the matching exit status.
func reportError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if hint := apperrors.HintOf(err); hint != "" {
		fmt.Fprintf(stderr, "Hint: %s\n", hint)
	}
	return exitCodeForError(err)
}

func exitCodeForError(err error) int {
	if err == nil {
		return exitOK
	}
	if apperrors.CategoryOf(err) == apperrors.CategoryUsage {
		return exitUsage
	}
	return exitIO
}
