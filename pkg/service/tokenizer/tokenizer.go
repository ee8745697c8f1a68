package tokenizer

import (
	"strings"
)

// DefaultDelimiter is the field separator assumed when none is configured
const DefaultDelimiter = ','

// Tokenizer splits raw delimited text into rows of trimmed fields.
// It has no notion of quoting or escaping: a delimiter character inside
// a field always splits the field.
type Tokenizer struct {
	delimiter string
}

// New creates a Tokenizer splitting fields on the given delimiter
func New(delimiter rune) *Tokenizer {
	return &Tokenizer{delimiter: string(delimiter)}
}

// Tokenize splits text into rows on line boundaries, skipping blank
// lines, then splits each line on the delimiter and trims surrounding
// whitespace from every field.
func (t *Tokenizer) Tokenize(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, t.delimiter)
		row := make([]string, 0, len(fields))
		for _, field := range fields {
			row = append(row, strings.TrimSpace(field))
		}
		rows = append(rows, row)
	}
	return rows
}
