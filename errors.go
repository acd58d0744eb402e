package main

import "fmt"

// SchemaViolationError reports a record or document that breaks the export's
// contract: a required field missing after selection, or a present field
// whose value does not parse. Always fatal.
type SchemaViolationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("schema violation: field %q %s: %q", e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("schema violation: field %q %s", e.Field, e.Reason)
}

// FileSystemError represents a failed directory creation, read, write, or
// copy. Fatal: the run stops and files already written stay on disk.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}
