package format

import (
	"errors"
	"fmt"
)

// Format is the format of a document read by the tooling.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	MsgpackFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":       JSONFormat,
		"json":    JSONFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"yml":     YAMLFormat,
		"m":       MsgpackFormat,
		"msgpack": MsgpackFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case MsgpackFormat:
		return []byte("msgpack"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool    { return f == JSONFormat }
func (f Format) IsYAML() bool    { return f == YAMLFormat }
func (f Format) IsMsgpack() bool { return f == MsgpackFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case MsgpackFormat:
		return ".msgpack"
	default:
		return ""
	}
}

// FromSuffix guesses a format from a file extension such as ".yml".
func FromSuffix(ext string) (Format, bool) {
	switch ext {
	case ".json":
		return JSONFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	case ".msgpack", ".mpk":
		return MsgpackFormat, true
	default:
		return 0, false
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, MsgpackFormat}
}
