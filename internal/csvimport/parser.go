// Package csvimport turns a bulk product CSV into upstream create calls.
// The parser mirrors the admin UI's hand-rolled reader: a per-character
// quote state machine per line, header row lower-cased into keys, missing
// trailing fields defaulting to empty.
package csvimport

import (
	"errors"
	"strings"
)

var ErrTooShort = errors.New("csv file must contain a header row and at least one data row")

// Record is one data row keyed by the lower-cased header names.
type Record map[string]string

// Parse reads the whole CSV text at once. Blank lines are skipped; the
// first surviving line is the header.
func Parse(text string) ([]Record, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(strings.TrimSuffix(line, "\r")) != "" {
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
	}
	if len(lines) < 2 {
		return nil, ErrTooShort
	}

	rawHeaders := parseLine(lines[0])
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := parseLine(line)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(values) {
				rec[h] = values[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseLine splits one line on commas, honoring quoted fields and doubled
// quotes inside them.
func parseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && !inQuotes:
			inQuotes = true
		case ch == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			current.WriteByte('"')
			i++
		case ch == '"' && inQuotes:
			inQuotes = false
		case ch == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, current.String())
	return fields
}
