package model

import (
	"github.com/tandem-lab/tandem/pkg/domain/types"
)

// ProjectPairOverlap aggregates the overlap days of one employee pair on
// one shared project. There is at most one record per
// (employeeLow, employeeHigh, projectID) key; contributions from every
// overlapping assignment pair accumulate into Days.
type ProjectPairOverlap struct {
	Pair      types.PairKey   `json:"pair"`
	ProjectID types.ProjectID `json:"project_id"`
	Days      int             `json:"days"`
}

// Key returns the aggregation key of this record
func (o ProjectPairOverlap) Key() types.ProjectPairKey {
	return types.ProjectPairKey{Pair: o.Pair, Project: o.ProjectID}
}

// EmployeePairTotal aggregates the overlap days of one employee pair
// across all shared projects.
type EmployeePairTotal struct {
	Pair types.PairKey `json:"pair"`
	Days int           `json:"days"`
}

// Report is the outcome of one analysis batch.
//
// Both overlap sets are always computed: AllOverlaps carries every
// overlapping (pair, project) record and TopOverlaps only those of the
// pair(s) tied for the maximum aggregate overlap. Which set is surfaced
// is the presentation layer's choice, via View.
type Report struct {
	BatchID      types.BatchID        `json:"batch_id"`
	Assignments  int                  `json:"assignments"`
	AllOverlaps  []ProjectPairOverlap `json:"all_overlaps"`
	TopOverlaps  []ProjectPairOverlap `json:"top_overlaps"`
	TopPairs     []types.PairKey      `json:"top_pairs"`
	MaxTotalDays int                  `json:"max_total_days"`
}

// View returns the overlap set selected by v. Unknown views fall back
// to the top-pair set.
func (r *Report) View(v types.ResultView) []ProjectPairOverlap {
	if v == types.ViewAll {
		return r.AllOverlaps
	}
	return r.TopOverlaps
}

// Empty reports whether the batch produced no overlapping pairs at all
func (r *Report) Empty() bool {
	return len(r.AllOverlaps) == 0
}
