package anylogic

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownExperiment indicates the model version has no experiment
	// template with the requested name.
	ErrUnknownExperiment = errors.New("anylogic: unknown experiment")

	// ErrUnknownInput indicates the input set has no input with the
	// requested name.
	ErrUnknownInput = errors.New("anylogic: unknown input")

	// ErrUnknownOutput indicates the run produced no output with the
	// requested name.
	ErrUnknownOutput = errors.New("anylogic: unknown output")

	// ErrRunFailed indicates the run reached a terminal state other than
	// COMPLETED.
	ErrRunFailed = errors.New("anylogic: run failed")
)

// APIError is a non-2xx response from the Cloud, carrying the vendor's
// status code and message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("anylogic: API error %d: %s", e.StatusCode, e.Message)
}
