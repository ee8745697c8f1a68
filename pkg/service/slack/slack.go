package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/tandem-lab/tandem/pkg/render"
)

// Service posts analysis reports to Slack
type Service struct {
	client *slack.Client
}

// New creates a new Slack service
func New(token string) *Service {
	return &Service{
		client: slack.New(token),
	}
}

// PostReport posts a fixed-width summary of the report to a channel.
// The overlap set shown follows the requested view.
func (s *Service) PostReport(ctx context.Context, channelID string, report *model.Report, view types.ResultView) error {
	overlaps := report.View(view)

	header := fmt.Sprintf("Pair overlap report: %d result(s), max aggregate overlap %d day(s)",
		len(overlaps), report.MaxTotalDays)
	body := render.Text(overlaps)

	_, _, err := s.client.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(header+"\n```"+body+"```", false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post report to Slack",
			goerr.V("channelID", channelID),
			goerr.V("batchID", report.BatchID))
	}

	return nil
}
