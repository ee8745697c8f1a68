package usecase

import (
	"sort"

	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
)

// SelectTopPairs picks the employee pair(s) tied for the maximum
// aggregate overlap and returns their per-project overlap records.
//
// Ties are all included; there is no arbitrary single winner. The
// returned overlaps are sorted by (low, high, project) and the winning
// pairs by (low, high), purely for reproducible output. Empty totals
// yield empty results.
func SelectTopPairs(totals map[types.PairKey]*model.EmployeePairTotal, perProject map[types.ProjectPairKey]*model.ProjectPairOverlap) ([]model.ProjectPairOverlap, []types.PairKey, int) {
	if len(totals) == 0 {
		return nil, nil, 0
	}

	maxDays := 0
	for _, total := range totals {
		if total.Days > maxDays {
			maxDays = total.Days
		}
	}

	winners := make(map[types.PairKey]bool)
	var pairs []types.PairKey
	for key, total := range totals {
		if total.Days == maxDays {
			winners[key] = true
			pairs = append(pairs, key)
		}
	}
	sortPairs(pairs)

	var overlaps []model.ProjectPairOverlap
	for key, overlap := range perProject {
		if winners[key.Pair] {
			overlaps = append(overlaps, *overlap)
		}
	}
	sortOverlaps(overlaps)

	return overlaps, pairs, maxDays
}

func sortPairs(pairs []types.PairKey) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Low != pairs[j].Low {
			return pairs[i].Low < pairs[j].Low
		}
		return pairs[i].High < pairs[j].High
	})
}

func sortOverlaps(overlaps []model.ProjectPairOverlap) {
	sort.Slice(overlaps, func(i, j int) bool {
		if overlaps[i].Pair.Low != overlaps[j].Pair.Low {
			return overlaps[i].Pair.Low < overlaps[j].Pair.Low
		}
		if overlaps[i].Pair.High != overlaps[j].Pair.High {
			return overlaps[i].Pair.High < overlaps[j].Pair.High
		}
		return overlaps[i].ProjectID < overlaps[j].ProjectID
	})
}
