/*
Package errors defines the error taxonomy for the recall pipeline.  Every
recoverable failure is a typed error wrapping its cause, so callers can
classify with errors.As while the original error stays reachable through
Unwrap.  ErrMissingCredential is the single fatal condition: it is returned
at construction time and never converted into a result envelope.
*/
package errors

import (
	"errors"
	"fmt"
)

// ErrMissingCredential is returned by provider constructors when no API key
// is available from either the options or the environment.
var ErrMissingCredential = errors.New("missing API credential")

/*
ExtractionError reports a failed text-to-record conversion.  It covers both
transport errors from the completion call and malformed model output.
*/
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

/*
MalformedOutputError reports model output that did not decode into the
required record shape.  Raw keeps the offending payload for debugging.
*/
type MalformedOutputError struct {
	Raw     string
	Missing []string
	Err     error
}

func (e *MalformedOutputError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("malformed model output: missing keys %v", e.Missing)
	}
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// IngestionError reports a store rejection or failure on the write path.
type IngestionError struct {
	Err error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed: %v", e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// RetrievalError reports a store failure on the read path.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// AnswerError reports a failed completion call while answering a question.
type AnswerError struct {
	Err error
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("answer failed: %v", e.Err)
}

func (e *AnswerError) Unwrap() error { return e.Err }
