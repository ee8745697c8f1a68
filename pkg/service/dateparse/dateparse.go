package dateparse

import (
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tandem-lab/tandem/pkg/domain/model"
)

// layoutPattern pairs a token shape with the layout used to parse it
type layoutPattern struct {
	shape  *regexp.Regexp
	layout string
}

// patterns lists the recognized formats in precedence order; the first
// shape that matches decides the layout.
//
// MM/DD/YYYY and DD/MM/YYYY share the identical \d\d/\d\d/\d\d\d\d shape,
// so the month-first entry always wins for slash dates and the day-first
// entry is unreachable. This precedence is a long-standing input
// convention and must not be reordered.
var patterns = []layoutPattern{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02"}, // YYYY-MM-DD
	{regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), "01/02/2006"}, // MM/DD/YYYY
	{regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`), "02-01-2006"}, // DD-MM-YYYY
	{regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), "02/01/2006"}, // DD/MM/YYYY, shadowed by MM/DD/YYYY
}

// fallbackLayouts is the generic free-form parser tried when no shape
// matches, or when a matched shape is not a real calendar date.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006-1-2",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// Normalizer converts textual date tokens into calendar dates
type Normalizer struct {
	now func() time.Time
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithClock overrides the wall clock used for empty and "null" tokens.
// Tests use it to pin "today" to a fixed date.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// New creates a new Normalizer
func New(opts ...Option) *Normalizer {
	n := &Normalizer{now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize parses a date token into a calendar date at midnight UTC.
//
// An empty token or the case-insensitive literal "null" defaults to
// today's date: an open-ended assignment runs through the day of
// processing. Batches containing such tokens therefore produce
// clock-dependent results.
func (n *Normalizer) Normalize(token string) (time.Time, error) {
	token = strings.TrimSpace(token)
	if token == "" || strings.EqualFold(token, "null") {
		return truncateToDate(n.now()), nil
	}

	for _, p := range patterns {
		if !p.shape.MatchString(token) {
			continue
		}
		if t, err := time.Parse(p.layout, token); err == nil {
			return truncateToDate(t), nil
		}
		// Shape matched but the components are not a real calendar
		// date (month 13, Feb 30). The generic fallback gets the
		// last word.
		break
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return truncateToDate(t), nil
		}
	}

	return time.Time{}, goerr.Wrap(model.ErrInvalidDate, "unparsable date token",
		goerr.V("token", token))
}

// truncateToDate drops the time component, anchoring the date in UTC so
// day arithmetic between normalized dates is exact.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
