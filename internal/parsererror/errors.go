// Package parsererror defines the error types surfaced by the bank statement
// parsers.
package parsererror

import "fmt"

// ParseError represents a failure to parse a single field of a CSV row.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnrecognizedFormatError is returned when the CSV header does not match any
// known bank format. It is fatal for the whole parse call; row-level problems
// are reported as skipped rows instead.
type UnrecognizedFormatError struct {
	Header string
}

func (e *UnrecognizedFormatError) Error() string {
	if e.Header == "" {
		return "unrecognized CSV format: empty or unreadable header"
	}
	return fmt.Sprintf("unrecognized CSV format: header %q matches no known bank layout", e.Header)
}

// DataExtractionError represents a failure to extract required data from an
// input whose overall format was recognized.
type DataExtractionError struct {
	Parser string
	Field  string
	Reason string
}

func (e *DataExtractionError) Error() string {
	return fmt.Sprintf("%s: could not extract %s: %s", e.Parser, e.Field, e.Reason)
}
