package submission

import "errors"

var ErrInvalidRequest = errors.New("invalid_request")

// ValidationError lists the offending fields by their JSON names.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }
