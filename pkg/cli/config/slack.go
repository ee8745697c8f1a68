package config

import (
	"log/slog"

	slackSvc "github.com/tandem-lab/tandem/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds optional Slack notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting reports",
			Category:    "Slack",
			Sources:     cli.EnvVars("TANDEM_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID to post reports to",
			Category:    "Slack",
			Sources:     cli.EnvVars("TANDEM_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// IsConfigured checks if Slack notification is enabled
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// ConfigureOptional creates a Slack service if configured, nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slackSvc.Service {
	if !s.IsConfigured() {
		return nil
	}

	logger.Info("Configuring Slack notification", slog.String("channel", s.Channel))
	return slackSvc.New(s.OAuthToken)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
