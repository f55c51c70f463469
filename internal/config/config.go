package config

import (
	"fmt"
	"os"
	"strings"

	"confession-stats/internal/grid"
	"confession-stats/internal/logger"

	"github.com/spf13/viper"
)

// DefaultInputFile is the responses workbook exported from the form.
const DefaultInputFile = "Long Khánh Confessions (Câu trả lời).xlsx"

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

// InputConfig selects the workbook and worksheet to read
type InputConfig struct {
	File  string `mapstructure:"file"`  // Workbook path, relative to the working directory
	Sheet string `mapstructure:"sheet"` // Worksheet name; empty means the active sheet
}

// ReportConfig holds report layout settings
type ReportConfig struct {
	SampleRows     int           `mapstructure:"sample_rows"`     // Data rows shown by the sample report
	SampleWidth    int           `mapstructure:"sample_width"`    // Max characters per sample cell
	ContentWidth   int           `mapstructure:"content_width"`   // Characters kept per content sample
	ContentSamples int           `mapstructure:"content_samples"` // Samples captured per content column
	Columns        []grid.Column `mapstructure:"columns"`         // Content columns, in report order
}

// LogConfig holds diagnostics settings
type LogConfig struct {
	File     string `mapstructure:"file"`     // Optional log file; empty disables it
	Verbose  bool   `mapstructure:"verbose"`  // Show DEBUG on the console
	Progress bool   `mapstructure:"progress"` // Show progress bars on stderr
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses the defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			logger.Debug("Config file %s not found, using defaults", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Debug("Loaded config from: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults reproduces the original report behavior when no file is given
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.file", DefaultInputFile)
	v.SetDefault("input.sheet", "")

	v.SetDefault("report.sample_rows", 3)
	v.SetDefault("report.sample_width", 100)
	v.SetDefault("report.content_width", 80)
	v.SetDefault("report.content_samples", 2)
	v.SetDefault("report.columns", []map[string]interface{}{
		{"label": "E", "index": 5},
		{"label": "F", "index": 6},
		{"label": "G", "index": 7},
		{"label": "H", "index": 8},
		{"label": "L", "index": 12},
		{"label": "M", "index": 13},
	})

	v.SetDefault("log.file", "")
	v.SetDefault("log.verbose", false)
	v.SetDefault("log.progress", true)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.File) == "" {
		return fmt.Errorf("input.file cannot be empty")
	}
	if c.Report.SampleRows < 0 {
		return fmt.Errorf("report.sample_rows must not be negative")
	}
	if c.Report.SampleWidth <= 0 {
		return fmt.Errorf("report.sample_width must be positive")
	}
	if c.Report.ContentWidth <= 0 {
		return fmt.Errorf("report.content_width must be positive")
	}
	if c.Report.ContentSamples < 0 {
		return fmt.Errorf("report.content_samples must not be negative")
	}

	for i, col := range c.Report.Columns {
		want, err := grid.Label(col.Index)
		if err != nil {
			return fmt.Errorf("report.columns[%d]: invalid index %d: %w", i, col.Index, err)
		}
		if col.Label == "" {
			return fmt.Errorf("report.columns[%d]: label cannot be empty", i)
		}
		if !strings.EqualFold(col.Label, want) {
			return fmt.Errorf("report.columns[%d]: label %q does not match index %d (%s)", i, col.Label, col.Index, want)
		}
		// Printed as-is by the content report
		c.Report.Columns[i].Label = want
	}

	return nil
}

// Print writes the current configuration to the debug log
func (c *Config) Print() {
	logger.Debug("=== Confession Stats Configuration ===")
	logger.Debug("Input File:       %s", c.Input.File)
	logger.Debug("Input Sheet:      %s", sheetOrActive(c.Input.Sheet))
	logger.Debug("Sample Rows:      %d (width %d)", c.Report.SampleRows, c.Report.SampleWidth)
	logger.Debug("Content Samples:  %d (width %d)", c.Report.ContentSamples, c.Report.ContentWidth)
	logger.Debug("Content Columns:  %v", c.Report.Columns)
	logger.Debug("Log File:         %s", c.Log.File)
	logger.Debug("======================================")
}

func sheetOrActive(sheet string) string {
	if sheet == "" {
		return "(active)"
	}
	return sheet
}
