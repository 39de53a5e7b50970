package xssp

import "fmt"

// A FormatError reports malformed input: a bad Stockholm header, a data
// line that cannot be split, a missing position suffix on a hit identifier,
// or an alignment with too few sequences. It is fatal for the chain whose
// input produced it.
type FormatError string

func (e FormatError) Error() string { return string(e) }

func formatErrf(format string, v ...interface{}) FormatError {
	return FormatError(fmt.Sprintf(format, v...))
}

// An AlignmentError reports an alignment that violates the invariants hit
// construction depends on: rows of unequal length, empty rows, or a query
// row that starts or ends with a gap.
type AlignmentError string

func (e AlignmentError) Error() string { return string(e) }

func alignErrf(format string, v ...interface{}) AlignmentError {
	return AlignmentError(fmt.Sprintf(format, v...))
}

// A LookupError reports a hit identifier the databank could not resolve.
// Hits with failed lookups are still reported, with empty title and
// accession fields.
type LookupError struct {
	ID string
}

func (e LookupError) Error() string {
	return fmt.Sprintf("databank has no entry for '%s'", e.ID)
}
