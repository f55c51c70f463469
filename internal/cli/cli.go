// Package cli holds the startup sequence shared by the report binaries:
// flag parsing, configuration, logging and loading the worksheet.
package cli

import (
	"flag"
	"fmt"
	"io"

	"confession-stats/internal/config"
	"confession-stats/internal/grid"
	"confession-stats/internal/logger"
	"confession-stats/internal/ui"
)

const AppVersion = "1.0.0"

// Options are the command-line flags common to every binary.
// All of them are optional; with none the report runs on the defaults.
type Options struct {
	ConfigPath  string
	Input       string
	Verbose     bool
	ShowVersion bool
}

// ParseFlags parses args (without the program name).
func ParseFlags(name string, args []string, stderr io.Writer) (*Options, error) {
	opts := &Options{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "config.yaml", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.Input, "input", "", "Override the workbook path from config")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	fs.BoolVar(&opts.Verbose, "v", false, "Enable verbose logging (shorthand)")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// Setup starts the logger on stderr and loads the configuration.
// Callers must defer logger.Close().
func Setup(opts *Options, stderr io.Writer) (*config.Config, error) {
	if err := logger.Init(stderr, "", opts.Verbose); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.Input != "" {
		cfg.Input.File = opts.Input
	}

	if cfg.Log.File != "" || cfg.Log.Verbose {
		if err := logger.Init(stderr, cfg.Log.File, opts.Verbose || cfg.Log.Verbose); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		if path := logger.GetLogFilePath(); path != "" {
			logger.Debug("Writing log to %s", path)
		}
	}
	if logger.IsVerbose() {
		cfg.Print()
	}

	return cfg, nil
}

// NewPipeline returns a progress pipeline on stderr, silenced when the
// configuration turns progress off.
func NewPipeline(cfg *config.Config, stderr io.Writer, phases ...ui.Phase) *ui.Pipeline {
	p := ui.NewPipelineWithOutput(phases, stderr)
	if !cfg.Log.Progress {
		p.Disable()
	}
	return p
}

// LoadGrid reads the configured worksheet, ticking the loading bar.
func LoadGrid(cfg *config.Config, bar *ui.ProgressBar) (*grid.Grid, error) {
	if bar != nil {
		bar.Describe(cfg.Input.File)
	}

	g, err := grid.Load(cfg.Input.File, cfg.Input.Sheet)
	if err != nil {
		return nil, err
	}

	if bar != nil {
		bar.Increment()
		bar.Finish()
	}
	logger.Info("Loaded sheet %q: %d rows, %d columns", g.Sheet, g.MaxRow(), g.MaxColumn())
	if g.DataRows() == 0 {
		logger.Warn("Sheet %q has no rows below the header", g.Sheet)
	}
	return g, nil
}
