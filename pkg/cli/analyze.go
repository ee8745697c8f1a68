package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tandem-lab/tandem/pkg/cli/config"
	"github.com/tandem-lab/tandem/pkg/render"
	"github.com/tandem-lab/tandem/pkg/service/dateparse"
	"github.com/tandem-lab/tandem/pkg/service/tokenizer"
	"github.com/tandem-lab/tandem/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdAnalyze() *cli.Command {
	var (
		reportCfg config.Report
		slackCfg  config.Slack
		inputPath string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Path to a delimited work-assignment file",
				Required:    true,
				Sources:     cli.EnvVars("TANDEM_INPUT"),
				Destination: &inputPath,
			},
		},
		reportCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze a work-assignment file and report the top employee pair(s)",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := reportCfg.Configure(); err != nil {
				return err
			}

			logger.Debug("Starting analysis",
				"input", inputPath,
				"report", reportCfg,
				"slack", slackCfg,
			)

			// File acquisition is this layer's job; the pipeline only
			// ever sees tokenized rows.
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read input file",
					goerr.V("path", inputPath))
			}

			rows := tokenizer.New(reportCfg.DelimiterRune()).Tokenize(string(data))

			analyzer := usecase.NewAnalyzer(dateparse.New())
			report, err := analyzer.Analyze(ctx, rows)
			if err != nil {
				return goerr.Wrap(err, "analysis failed", goerr.V("path", inputPath))
			}

			view := reportCfg.ResultView()
			fmt.Println(render.Table(report.View(view), reportCfg.EmptyMessage))

			if svc := slackCfg.ConfigureOptional(logger); svc != nil {
				if err := svc.PostReport(ctx, slackCfg.Channel, report, view); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
