package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
)

func TestProjectPairOverlapKey(t *testing.T) {
	overlap := model.ProjectPairOverlap{
		Pair:      types.NewPairKey(2, 1),
		ProjectID: 10,
		Days:      5,
	}

	key := overlap.Key()
	gt.Equal(t, key.Pair, types.PairKey{Low: 1, High: 2})
	gt.Equal(t, key.Project, types.ProjectID(10))
}

func TestReportView(t *testing.T) {
	all := []model.ProjectPairOverlap{
		{Pair: types.NewPairKey(1, 2), ProjectID: 10, Days: 6},
		{Pair: types.NewPairKey(1, 3), ProjectID: 22, Days: 3},
	}
	top := all[:1]

	report := &model.Report{
		BatchID:      types.NewBatchID(),
		AllOverlaps:  all,
		TopOverlaps:  top,
		TopPairs:     []types.PairKey{{Low: 1, High: 2}},
		MaxTotalDays: 6,
	}

	t.Run("top view returns winners only", func(t *testing.T) {
		gt.Equal(t, report.View(types.ViewTop), top)
	})

	t.Run("all view returns every pair", func(t *testing.T) {
		gt.Equal(t, report.View(types.ViewAll), all)
	})

	t.Run("unknown view falls back to top", func(t *testing.T) {
		gt.Equal(t, report.View(types.ResultView("bogus")), top)
	})
}

func TestReportEmpty(t *testing.T) {
	gt.True(t, (&model.Report{}).Empty())
	gt.False(t, (&model.Report{
		AllOverlaps: []model.ProjectPairOverlap{{Pair: types.NewPairKey(1, 2), ProjectID: 1, Days: 1}},
	}).Empty())
}
