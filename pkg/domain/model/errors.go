package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for input validation
var (
	// ErrInvalidDate is returned when a date token matches no supported
	// format and the generic fallback parser fails as well.
	ErrInvalidDate = goerr.New("invalid date")
	// ErrInvalidFormat is returned when a row has a non-numeric
	// employee/project identifier or a date field that fails to normalize.
	ErrInvalidFormat = goerr.New("invalid record format")
)
