package encode

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoding is the root of all errors raised by the encoder itself.
	// Errors from the sink are returned unchanged and do not wrap it.
	ErrEncoding = errors.New("encoding error")

	// ErrBadMapKey is returned when a protocol call in map key position
	// cannot produce a JSON string: null, booleans, options and
	// composites.
	ErrBadMapKey = fmt.Errorf("%w: value not usable as an object key", ErrEncoding)
)

func badKey(what string) error {
	return fmt.Errorf("%w: %s", ErrBadMapKey, what)
}
