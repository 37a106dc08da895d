package pipeline

import "fmt"

// PathError reports an invalid or unreadable directory or file path.
// It is fatal to the whole run.
type PathError struct {
	Path string
	Msg  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %s: %s", e.Path, e.Msg)
}

// ParseError reports malformed JSON in a single input file. The file is
// skipped and the run continues.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a read failure on a single input file. Isolated for
// reads, fatal when it concerns the final output.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// AggregationError means no usable input was produced by the aggregation
// stage. Fatal.
type AggregationError struct {
	Msg string
}

func (e *AggregationError) Error() string {
	return "aggregation failed: " + e.Msg
}

// WriteError means the output file could not be created or written. Fatal.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
