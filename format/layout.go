package format

import (
	"errors"
	"fmt"
)

// Layout selects how structural whitespace is written.
type Layout int

const (
	// CompactLayout writes no whitespace beyond what scalars require.
	CompactLayout Layout = iota
	// PrettyLayout writes a newline and indentation before each element
	// and closing delimiter and a space after each key separator.
	PrettyLayout
)

// DefaultIndent is the number of spaces per nesting level used by
// PrettyLayout when no step is given.
const DefaultIndent = 2

var ErrBadLayout = errors.New("bad layout")

func ParseLayout(v string) (Layout, error) {
	l, ok := map[string]Layout{
		"c":       CompactLayout,
		"compact": CompactLayout,
		"wire":    CompactLayout,
		"p":       PrettyLayout,
		"pretty":  PrettyLayout,
	}[v]
	if ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadLayout, v)
}

func (l Layout) String() string {
	d, err := l.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (l Layout) MarshalText() ([]byte, error) {
	switch l {
	case CompactLayout:
		return []byte("compact"), nil
	case PrettyLayout:
		return []byte("pretty"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a layout>", l)
	}
}

func (l *Layout) UnmarshalText(d []byte) error {
	pl, err := ParseLayout(string(d))
	if err != nil {
		return err
	}
	*l = pl
	return nil
}

func (l Layout) IsCompact() bool { return l == CompactLayout }
func (l Layout) IsPretty() bool  { return l == PrettyLayout }
