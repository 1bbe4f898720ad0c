// Package common provides shared CSV plumbing for the bank statement
// parsers.
package common

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
)

// ReadRows decodes CSV content into a slice of row structs using gocsv
// struct tags. TRow is the struct type mapping the institution's columns.
func ReadRows[TRow any](content string) ([]TRow, error) {
	var rows []TRow
	if err := gocsv.UnmarshalString(content, &rows); err != nil {
		return nil, fmt.Errorf("error decoding CSV rows: %w", err)
	}
	return rows, nil
}

// ReadHeader returns the first record of the CSV content, normalized to
// lower-cased, trimmed column names.
func ReadHeader(content string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	normalized := make([]string, len(header))
	for i, col := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(stripBOM(col)))
	}
	return normalized, nil
}

// HasColumns reports whether header (as returned by ReadHeader) contains
// every one of the given lower-cased column names.
func HasColumns(header []string, columns ...string) bool {
	set := make(map[string]bool, len(header))
	for _, col := range header {
		set[col] = true
	}
	for _, col := range columns {
		if !set[col] {
			return false
		}
	}
	return true
}

// stripBOM removes a leading UTF-8 byte order mark, which some banks prepend
// to their exports.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

// StripBOM removes a leading UTF-8 byte order mark from CSV content.
func StripBOM(content string) string {
	return stripBOM(content)
}
