package gomap

import "fmt"

// MarshalError represents an error while mapping a Go value onto the
// protocol.
type MarshalError struct {
	FieldPath string // e.g. "person.address.street"
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
