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
	appName = "analyze-sheet"
	appDesc = "Prints the column structure and sample rows of the confessions sheet"
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

	pipeline := cli.NewPipeline(cfg, stderr, ui.PhaseLoading)
	g, err := cli.LoadGrid(cfg, pipeline.NextPhase(1))
	pipeline.Finish()
	if err != nil {
		logger.Error("Failed to load workbook: %v", err)
		return 1
	}

	if err := report.Headers(stdout, g); err != nil {
		logger.Error("Header report failed: %v", err)
		return 1
	}

	sampleOpts := report.SampleOptions{
		Rows:  cfg.Report.SampleRows,
		Width: cfg.Report.SampleWidth,
	}
	if err := report.Samples(stdout, g, sampleOpts); err != nil {
		logger.Error("Sample report failed: %v", err)
		return 1
	}

	return 0
}
