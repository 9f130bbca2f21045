package encode

import "github.com/signadot/jsonenc/format"

// formatState decides the whitespace written at structural boundaries.
// In the compact layout it writes nothing and tracks nothing.
type formatState struct {
	pretty bool
	indent int // current, a multiple of step
	step   int
}

func newFormatState(l format.Layout, step int) formatState {
	if !l.IsPretty() {
		return formatState{}
	}
	return formatState{pretty: true, step: step}
}

func (fs *formatState) enter() {
	if fs.pretty {
		fs.indent += fs.step
	}
}

func (fs *formatState) leave() {
	if fs.pretty {
		fs.indent -= fs.step
	}
}

func (fs *formatState) keyValueSep() string {
	if fs.pretty {
		return ": "
	}
	return ":"
}
