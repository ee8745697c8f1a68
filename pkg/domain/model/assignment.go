package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tandem-lab/tandem/pkg/domain/types"
)

// WorkAssignment is one validated input row: an employee's stay on a
// project over an inclusive date range. DateFrom after DateTo is allowed
// in the input; such a span simply never overlaps anything.
//
// A WorkAssignment is created once during validation and never modified
// afterwards; it lives only for the duration of one analysis run.
type WorkAssignment struct {
	EmployeeID types.EmployeeID
	ProjectID  types.ProjectID
	DateFrom   time.Time
	DateTo     time.Time
}

// NewWorkAssignment creates a new WorkAssignment instance
func NewWorkAssignment(employeeID types.EmployeeID, projectID types.ProjectID, dateFrom, dateTo time.Time) (*WorkAssignment, error) {
	if dateFrom.IsZero() {
		return nil, goerr.Wrap(ErrInvalidDate, "date-from must be set",
			goerr.V("employeeID", employeeID),
			goerr.V("projectID", projectID))
	}
	if dateTo.IsZero() {
		return nil, goerr.Wrap(ErrInvalidDate, "date-to must be set",
			goerr.V("employeeID", employeeID),
			goerr.V("projectID", projectID))
	}

	return &WorkAssignment{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	}, nil
}
