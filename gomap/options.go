package gomap

import "github.com/signadot/jsonenc/encode"

// MapOption is an option for controlling how Go values are mapped onto
// the protocol.
type MapOption func(*mapConfig)

type mapConfig struct {
	// passed through to encode.Encode by ToJSON
	encodeOptions []encode.EncodeOption
	omitEmpty     bool
}

func newMapConfig(opts []MapOption) *mapConfig {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// EncodeOptions sets the encode options used by ToJSON.
func EncodeOptions(opts ...encode.EncodeOption) MapOption {
	return func(c *mapConfig) { c.encodeOptions = append(c.encodeOptions, opts...) }
}

// OmitEmpty skips zero valued struct fields as if each was tagged
// omitempty.
func OmitEmpty(v bool) MapOption {
	return func(c *mapConfig) { c.omitEmpty = v }
}

// ToEncodeOptions extracts the encode options from opts.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	return newMapConfig(opts).encodeOptions
}
