package usecase

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tandem-lab/tandem/pkg/domain/model"
	"github.com/tandem-lab/tandem/pkg/domain/types"
	"github.com/tandem-lab/tandem/pkg/service/dateparse"
)

// minRecordTokens is the number of fields a row needs to be considered
// data: employee id, project id, date from, date to.
const minRecordTokens = 4

// Validator turns tokenized rows into work assignments
type Validator struct {
	normalizer *dateparse.Normalizer
}

// NewValidator creates a new Validator instance
func NewValidator(normalizer *dateparse.Normalizer) *Validator {
	return &Validator{
		normalizer: normalizer,
	}
}

// ValidateRecords validates a whole batch of tokenized rows.
//
// Rows with fewer than four tokens are treated as blank or filler lines
// and skipped silently. Any other defect rejects the entire batch: no
// partial result is ever produced from input containing an invalid row.
func (v *Validator) ValidateRecords(rows [][]string) ([]model.WorkAssignment, error) {
	assignments := make([]model.WorkAssignment, 0, len(rows))

	for i, row := range rows {
		if len(row) < minRecordTokens {
			continue
		}

		employeeID, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, goerr.Wrap(model.ErrInvalidFormat, "employee ID is not numeric",
				goerr.V("row", i),
				goerr.V("token", row[0]))
		}

		projectID, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, goerr.Wrap(model.ErrInvalidFormat, "project ID is not numeric",
				goerr.V("row", i),
				goerr.V("token", row[1]))
		}

		dateFrom, err := v.normalizer.Normalize(row[2])
		if err != nil {
			return nil, goerr.Wrap(model.ErrInvalidFormat, "date-from failed to normalize",
				goerr.V("row", i),
				goerr.V("token", row[2]),
				goerr.V("cause", err.Error()))
		}

		dateTo, err := v.normalizer.Normalize(row[3])
		if err != nil {
			return nil, goerr.Wrap(model.ErrInvalidFormat, "date-to failed to normalize",
				goerr.V("row", i),
				goerr.V("token", row[3]),
				goerr.V("cause", err.Error()))
		}

		assignment, err := model.NewWorkAssignment(
			types.EmployeeID(employeeID),
			types.ProjectID(projectID),
			dateFrom,
			dateTo,
		)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create work assignment",
				goerr.V("row", i))
		}

		assignments = append(assignments, *assignment)
	}

	return assignments, nil
}
