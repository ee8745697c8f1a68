package types

import (
	"fmt"

	"github.com/google/uuid"
)

// EmployeeID represents an employee identifier from the input data.
// It is caller-supplied and need not be unique across assignments.
type EmployeeID int

// String returns the string representation
func (id EmployeeID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int returns the int representation
func (id EmployeeID) Int() int {
	return int(id)
}

// ProjectID represents a project identifier from the input data
type ProjectID int

// String returns the string representation
func (id ProjectID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int returns the int representation
func (id ProjectID) Int() int {
	return int(id)
}

// BatchID identifies a single analysis run
type BatchID string

// String returns the string representation
func (id BatchID) String() string {
	return string(id)
}

// NewBatchID creates a new BatchID
func NewBatchID() BatchID {
	return BatchID(uuid.New().String())
}

// PairKey is an unordered pair of distinct employees in canonical order.
// Low is always the smaller identifier, so the same two employees map to
// the same key regardless of input order.
type PairKey struct {
	Low  EmployeeID
	High EmployeeID
}

// NewPairKey builds the canonical key for two employee identifiers
func NewPairKey(a, b EmployeeID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}
}

// String returns the string representation
func (k PairKey) String() string {
	return fmt.Sprintf("%d/%d", k.Low, k.High)
}

// ProjectPairKey keys the per-project overlap aggregation
type ProjectPairKey struct {
	Pair    PairKey
	Project ProjectID
}

// String returns the string representation
func (k ProjectPairKey) String() string {
	return fmt.Sprintf("%s@%d", k.Pair, k.Project)
}

// ResultView selects which overlap set a presentation surface shows
type ResultView string

const (
	// ViewTop shows only the overlaps of the pair(s) with the greatest
	// aggregate overlap. This is the default.
	ViewTop ResultView = "top"
	// ViewAll shows the overlaps of every employee pair
	ViewAll ResultView = "all"
)

// IsValid checks if the result view is valid
func (v ResultView) IsValid() bool {
	switch v {
	case ViewTop, ViewAll:
		return true
	default:
		return false
	}
}
