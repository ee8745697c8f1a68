package usecase

import (
	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
)

// ComputeOverlaps aggregates overlap days for every unordered pair of
// distinct employees sharing a project with overlapping dates.
//
// Each unordered pair of records is examined exactly once and a record
// is never paired with itself. The returned maps are created inside the
// call and owned by the caller; accumulation is a plain sum, so the
// result does not depend on input order. The scan is O(n²) over the
// batch, which is fine for human-curated datasets.
func ComputeOverlaps(assignments []model.WorkAssignment) (map[types.ProjectPairKey]*model.ProjectPairOverlap, map[types.PairKey]*model.EmployeePairTotal) {
	perProject := make(map[types.ProjectPairKey]*model.ProjectPairOverlap)
	totals := make(map[types.PairKey]*model.EmployeePairTotal)

	for i := 0; i < len(assignments); i++ {
		for j := i + 1; j < len(assignments); j++ {
			a, b := assignments[i], assignments[j]
			if a.ProjectID != b.ProjectID || a.EmployeeID == b.EmployeeID {
				continue
			}

			days := overlapDays(a, b)
			if days <= 0 {
				continue
			}

			pair := types.NewPairKey(a.EmployeeID, b.EmployeeID)
			key := types.ProjectPairKey{Pair: pair, Project: a.ProjectID}

			if entry, ok := perProject[key]; ok {
				entry.Days += days
			} else {
				perProject[key] = &model.ProjectPairOverlap{
					Pair:      pair,
					ProjectID: a.ProjectID,
					Days:      days,
				}
			}

			if entry, ok := totals[pair]; ok {
				entry.Days += days
			} else {
				totals[pair] = &model.EmployeePairTotal{
					Pair: pair,
					Days: days,
				}
			}
		}
	}

	return perProject, totals
}

// overlapDays returns the inclusive day count common to both assignment
// spans, or 0 when the intersection is empty. Both boundary days count
// as worked. Dates are normalized to midnight UTC, so the division is
// exact.
func overlapDays(a, b model.WorkAssignment) int {
	start := a.DateFrom
	if b.DateFrom.After(start) {
		start = b.DateFrom
	}

	end := a.DateTo
	if b.DateTo.Before(end) {
		end = b.DateTo
	}

	if end.Before(start) {
		return 0
	}

	return int(end.Sub(start).Hours()/24) + 1
}
