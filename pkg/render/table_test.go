package render_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/tandem-lab/tandem/pkg/render"
)

var sampleOverlaps = []model.ProjectPairOverlap{
	{Pair: types.NewPairKey(143, 218), ProjectID: 10, Days: 8},
	{Pair: types.NewPairKey(143, 218), ProjectID: 12, Days: 66},
}

func TestTable(t *testing.T) {
	t.Run("renders count line and columns", func(t *testing.T) {
		out := render.Table(sampleOverlaps, "")
		gt.S(t, out).Contains("2 result(s)")
		gt.S(t, out).Contains("Employee ID #1")
		gt.S(t, out).Contains("Employee ID #2")
		gt.S(t, out).Contains("Project ID")
		gt.S(t, out).Contains("Days worked")
		gt.S(t, out).Contains("143")
		gt.S(t, out).Contains("218")
		gt.S(t, out).Contains("66")
	})

	t.Run("empty result renders default fallback", func(t *testing.T) {
		out := render.Table(nil, "")
		gt.S(t, out).Contains(render.DefaultEmptyMessage)
	})

	t.Run("empty result renders custom fallback", func(t *testing.T) {
		out := render.Table(nil, "nothing to see here")
		gt.S(t, out).Contains("nothing to see here")
	})
}

func TestText(t *testing.T) {
	t.Run("renders fixed-width rows", func(t *testing.T) {
		out := render.Text(sampleOverlaps)
		gt.S(t, out).Contains("Employee #1")
		gt.S(t, out).Contains("143")
		gt.S(t, out).Contains("218")
		gt.S(t, out).Contains("66")
	})

	t.Run("empty result renders fallback", func(t *testing.T) {
		gt.Equal(t, render.Text(nil), render.DefaultEmptyMessage)
	})
}
