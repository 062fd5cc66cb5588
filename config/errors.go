package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRecord = errors.New("missing record")
	ErrMissingField  = errors.New("missing field")
	ErrInvalidValue  = errors.New("invalid value")
)

// RecordError identifies the record and field a configuration problem was found in.
type RecordError struct {
	Record string
	Field  string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config: %s: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("config: %s.%s: %v", e.Record, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
