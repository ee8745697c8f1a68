package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Report holds presentation configuration for analysis results
type Report struct {
	View         string
	Delimiter    string
	EmptyMessage string
	ConfigPath   string
}

// reportFile mirrors the flag set in YAML form
type reportFile struct {
	View         string `yaml:"view"`
	Delimiter    string `yaml:"delimiter"`
	EmptyMessage string `yaml:"empty_message"`
}

// Flags returns CLI flags for Report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "view",
			Usage:       "Result view: 'top' shows only the winning pair(s), 'all' every pair",
			Category:    "Report",
			Value:       string(types.ViewTop),
			Sources:     cli.EnvVars("TANDEM_VIEW"),
			Destination: &r.View,
		},
		&cli.StringFlag{
			Name:        "delimiter",
			Usage:       "Field delimiter of the input text",
			Category:    "Report",
			Value:       ",",
			Sources:     cli.EnvVars("TANDEM_DELIMITER"),
			Destination: &r.Delimiter,
		},
		&cli.StringFlag{
			Name:        "empty-message",
			Usage:       "Message shown when no overlapping pairs exist",
			Category:    "Report",
			Sources:     cli.EnvVars("TANDEM_EMPTY_MESSAGE"),
			Destination: &r.EmptyMessage,
		},
		&cli.StringFlag{
			Name:        "report-config",
			Usage:       "Path to an optional YAML file with report settings",
			Category:    "Report",
			Sources:     cli.EnvVars("TANDEM_REPORT_CONFIG"),
			Destination: &r.ConfigPath,
		},
	}
}

// Configure applies the optional YAML file and validates the result.
// Non-empty file values override the flag/default values.
func (r *Report) Configure() error {
	if r.ConfigPath != "" {
		data, err := os.ReadFile(r.ConfigPath)
		if err != nil {
			if os.IsNotExist(err) {
				return goerr.Wrap(err, "report configuration file not found",
					goerr.V("path", r.ConfigPath))
			}
			return goerr.Wrap(err, "failed to read report configuration file",
				goerr.V("path", r.ConfigPath))
		}

		var file reportFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return goerr.Wrap(err, "failed to parse report configuration",
				goerr.V("path", r.ConfigPath))
		}

		if file.View != "" {
			r.View = file.View
		}
		if file.Delimiter != "" {
			r.Delimiter = file.Delimiter
		}
		if file.EmptyMessage != "" {
			r.EmptyMessage = file.EmptyMessage
		}
	}

	return r.Validate()
}

// Validate validates the report configuration
func (r *Report) Validate() error {
	if !types.ResultView(r.View).IsValid() {
		return goerr.New("invalid result view", goerr.V("view", r.View))
	}
	if len([]rune(r.Delimiter)) != 1 {
		return goerr.New("delimiter must be a single character",
			goerr.V("delimiter", r.Delimiter))
	}
	return nil
}

// ResultView returns the configured view as a typed value
func (r *Report) ResultView() types.ResultView {
	return types.ResultView(r.View)
}

// DelimiterRune returns the configured delimiter as a rune
func (r *Report) DelimiterRune() rune {
	return []rune(r.Delimiter)[0]
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("view", r.View),
		slog.String("delimiter", r.Delimiter),
		slog.Bool("has_empty_message", r.EmptyMessage != ""),
		slog.String("config_path", r.ConfigPath),
	)
}
