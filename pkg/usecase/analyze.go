package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/tandem-lab/tandem/pkg/service/dateparse"
)

// Analyzer runs the full pipeline: record validation, pairwise overlap
// aggregation and top-pair selection. Each invocation is independent
// and side-effect free; nothing is shared across runs.
type Analyzer struct {
	validator *Validator
}

// NewAnalyzer creates a new Analyzer instance
func NewAnalyzer(normalizer *dateparse.Normalizer) *Analyzer {
	return &Analyzer{
		validator: NewValidator(normalizer),
	}
}

// Analyze processes one batch of tokenized rows into a Report.
// The whole batch is rejected on the first invalid row.
func (a *Analyzer) Analyze(ctx context.Context, rows [][]string) (*model.Report, error) {
	assignments, err := a.validator.ValidateRecords(rows)
	if err != nil {
		return nil, goerr.Wrap(err, "batch validation failed")
	}

	perProject, totals := ComputeOverlaps(assignments)
	topOverlaps, topPairs, maxDays := SelectTopPairs(totals, perProject)

	allOverlaps := make([]model.ProjectPairOverlap, 0, len(perProject))
	for _, overlap := range perProject {
		allOverlaps = append(allOverlaps, *overlap)
	}
	sortOverlaps(allOverlaps)

	report := &model.Report{
		BatchID:      types.NewBatchID(),
		Assignments:  len(assignments),
		AllOverlaps:  allOverlaps,
		TopOverlaps:  topOverlaps,
		TopPairs:     topPairs,
		MaxTotalDays: maxDays,
	}

	ctxlog.From(ctx).Info("analyzed batch",
		"batchID", report.BatchID,
		"rows", len(rows),
		"assignments", len(assignments),
		"overlappingPairs", len(totals),
		"topPairs", len(topPairs),
		"maxTotalDays", maxDays,
	)

	return report, nil
}
