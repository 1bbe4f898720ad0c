// Package dateutils provides the date parsing shared by the bank statement
// parsers.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layout constants used throughout the application.
const (
	LayoutISO     = "2006-01-02"
	LayoutUS      = "01/02/2006"
	LayoutUSShort = "01/02/06"
)

// CommonFormats are tried in order when parsing dates from bank CSVs. US
// month-first layouts come first because the supported banks export them.
var CommonFormats = []string{
	LayoutUS,
	LayoutISO,
	LayoutUSShort,
	"02/01/2006",
	"2006/01/02",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseDate parses a date string by trying each common format in turn.
// Failure to match any format is an error the caller treats as a per-row
// problem, never a fatal one.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(LayoutISO)
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespaceRe.ReplaceAllString(dateStr, " ")
}

// DateOnly truncates a time to its calendar date in UTC. Parsed transactions
// carry no time component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
