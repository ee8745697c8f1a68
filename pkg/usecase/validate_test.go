package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/tandem-lab/tandem/pkg/service/dateparse"
	"github.com/tandem-lab/tandem/pkg/usecase"
)

func newValidator() *usecase.Validator {
	normalizer := dateparse.New(dateparse.WithClock(func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}))
	return usecase.NewValidator(normalizer)
}

func TestValidateRecords(t *testing.T) {
	v := newValidator()

	t.Run("valid rows produce assignments", func(t *testing.T) {
		assignments, err := v.ValidateRecords([][]string{
			{"143", "12", "2013-11-01", "2014-01-05"},
			{"218", "10", "2012-05-16", "null"},
		})
		gt.NoError(t, err)
		gt.Equal(t, len(assignments), 2)
		gt.Equal(t, assignments[0].EmployeeID, types.EmployeeID(143))
		gt.Equal(t, assignments[0].ProjectID, types.ProjectID(12))
		gt.Equal(t, assignments[1].DateTo, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	})

	t.Run("short rows are skipped silently", func(t *testing.T) {
		assignments, err := v.ValidateRecords([][]string{
			{"143", "12", "2013-11-01", "2014-01-05"},
			{"filler"},
			{"1", "2", "2013-11-01"},
			{},
		})
		gt.NoError(t, err)
		gt.Equal(t, len(assignments), 1)
	})

	t.Run("extra tokens are ignored", func(t *testing.T) {
		assignments, err := v.ValidateRecords([][]string{
			{"143", "12", "2013-11-01", "2014-01-05", "comment"},
		})
		gt.NoError(t, err)
		gt.Equal(t, len(assignments), 1)
	})

	t.Run("non-numeric employee ID fails", func(t *testing.T) {
		_, err := v.ValidateRecords([][]string{
			{"emp-143", "12", "2013-11-01", "2014-01-05"},
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidFormat))
		gt.S(t, err.Error()).Contains("employee ID is not numeric")
	})

	t.Run("non-numeric project ID fails", func(t *testing.T) {
		_, err := v.ValidateRecords([][]string{
			{"143", "P12", "2013-11-01", "2014-01-05"},
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidFormat))
	})

	t.Run("unparsable date fails", func(t *testing.T) {
		_, err := v.ValidateRecords([][]string{
			{"143", "12", "yesterday", "2014-01-05"},
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidFormat))
		gt.S(t, err.Error()).Contains("date-from")
	})

	t.Run("fail-fast rejects the whole batch", func(t *testing.T) {
		assignments, err := v.ValidateRecords([][]string{
			{"143", "12", "2013-11-01", "2014-01-05"},
			{"218", "10", "2012-05-16", "2012-06-01"},
			{"bad", "10", "2012-05-16", "2012-06-01"},
			{"300", "10", "2012-05-16", "2012-06-01"},
		})
		gt.Error(t, err)
		gt.V(t, assignments).Nil()
	})
}
