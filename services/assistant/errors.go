package assistant

import (
	"errors"
	"fmt"
)

// ErrEventNameMissing is returned when an event-details query names no event.
var ErrEventNameMissing = errors.New("event name not specified in the query")

// UnsupportedQueryTypeError is returned when the view extraction yields a
// query type the assistant cannot serve.
type UnsupportedQueryTypeError struct {
	QueryType string
}

func (e *UnsupportedQueryTypeError) Error() string {
	return fmt.Sprintf("unsupported query type: %s", e.QueryType)
}

// QueryParseError wraps a failure to extract structured query parameters
// from the request text.
type QueryParseError struct {
	Err error
}

func (e *QueryParseError) Error() string {
	return fmt.Sprintf("failed to parse query parameters: %v", e.Err)
}

func (e *QueryParseError) Unwrap() error { return e.Err }

// FindTimeError wraps a failure inside the find-time pipeline so handlers
// can shape the response for that intent.
type FindTimeError struct {
	Err error
}

func (e *FindTimeError) Error() string { return e.Err.Error() }

func (e *FindTimeError) Unwrap() error { return e.Err }
