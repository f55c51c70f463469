package main

import (
	"fmt"
	"io"
	"os"

	"confession-stats/internal/cli"
	"confession-stats/internal/logger"
	"confession-stats/internal/report"
	"confession-stats/internal/ui"
)

const (
	appName = "analyze-content"
	appDesc = "Reports which columns of the confessions sheet hold text content"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := cli.ParseFlags(appName, args, stderr)
	if err != nil {
		return 2
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "%s v%s\n%s\n", appName, cli.AppVersion, appDesc)
		return 0
	}

	cfg, err := cli.Setup(opts, stderr)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}
	defer logger.Close()

	pipeline := cli.NewPipeline(cfg, stderr, ui.PhaseLoading, ui.PhaseScanning)

	g, err := cli.LoadGrid(cfg, pipeline.NextPhase(1))
	if err != nil {
		pipeline.Finish()
		logger.Error("Failed to load workbook: %v", err)
		return 1
	}

	// Nothing is printed unless every column was analyzed.
	scanBar := pipeline.NextPhase(len(cfg.Report.Columns))
	if cells := len(cfg.Report.Columns) * g.DataRows(); cells > 0 {
		scanBar.SetTotal(cells)
	}
	contentOpts := report.ContentOptions{
		Samples: cfg.Report.ContentSamples,
		Width:   cfg.Report.ContentWidth,
	}
	stats, err := report.AnalyzeColumns(g, cfg.Report.Columns, contentOpts, scanBar)
	pipeline.Finish()
	if err != nil {
		logger.Error("Content analysis failed: %v", err)
		return 1
	}

	if err := report.Content(stdout, stats); err != nil {
		logger.Error("Content report failed: %v", err)
		return 1
	}

	return 0
}
