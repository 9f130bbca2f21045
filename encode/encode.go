package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/jsonenc/debug"
	"github.com/signadot/jsonenc/token"
	"github.com/signadot/jsonenc/visit"
)

// Encoder writes the protocol calls it receives to an io.Writer as JSON
// text, in a single pass and without buffering.
//
// An Encoder is used by one encode at a time. After a failed encode the
// writer holds a truncated document which should be discarded.
type Encoder struct {
	w      io.Writer
	fs     formatState
	mapKey bool // the next scalar is an object key
	depth  int
	offset int64
	color  func(Kind, ColorAttr, string) string
}

var _ visit.Encoder = (*Encoder)(nil)

// NewEncoder creates a new Encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	o := newOpts(opts)
	return &Encoder{
		w:     w,
		fs:    newFormatState(o.layout, o.indent),
		color: o.color,
	}
}

// Encode encodes v to w.
func Encode(v visit.Encodable, w io.Writer, opts ...EncodeOption) error {
	return NewEncoder(w, opts...).Encode(v)
}

// ToString encodes v and returns the text.
func ToString(v visit.Encodable, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Encode encodes v.
func (e *Encoder) Encode(v visit.Encodable) error {
	return v.Encode(e)
}

// Reset rebinds the encoder to w, keeping its options.
func (e *Encoder) Reset(w io.Writer) {
	e.w = w
	e.fs.indent = 0
	e.mapKey = false
	e.depth = 0
	e.offset = 0
}

// Offset returns the number of bytes written.
func (e *Encoder) Offset() int64 {
	return e.offset
}

// Depth returns the current nesting depth (0 = top level).
func (e *Encoder) Depth() int {
	return e.depth
}

// Scalars

func (e *Encoder) EmitNil() error {
	if e.mapKey {
		return badKey("null")
	}
	return e.writeToken(NullKind, ValueColor, token.Null)
}

func (e *Encoder) EmitBool(v bool) error {
	if e.mapKey {
		return badKey("bool")
	}
	if v {
		return e.writeToken(BoolKind, ValueColor, "true")
	}
	return e.writeToken(BoolKind, ValueColor, "false")
}

func (e *Encoder) EmitInt(v int) error     { return e.emitNumber(token.FormatInt(int64(v))) }
func (e *Encoder) EmitInt8(v int8) error   { return e.emitNumber(token.FormatInt(int64(v))) }
func (e *Encoder) EmitInt16(v int16) error { return e.emitNumber(token.FormatInt(int64(v))) }
func (e *Encoder) EmitInt32(v int32) error { return e.emitNumber(token.FormatInt(int64(v))) }
func (e *Encoder) EmitInt64(v int64) error { return e.emitNumber(token.FormatInt(v)) }

func (e *Encoder) EmitUint(v uint) error     { return e.emitNumber(token.FormatUint(uint64(v))) }
func (e *Encoder) EmitUint8(v uint8) error   { return e.emitNumber(token.FormatUint(uint64(v))) }
func (e *Encoder) EmitUint16(v uint16) error { return e.emitNumber(token.FormatUint(uint64(v))) }
func (e *Encoder) EmitUint32(v uint32) error { return e.emitNumber(token.FormatUint(uint64(v))) }
func (e *Encoder) EmitUint64(v uint64) error { return e.emitNumber(token.FormatUint(v)) }

// EmitFloat32 writes v with the shortest digits that round trip as a
// float32. NaN and infinities are written as null, or "null" as a key.
func (e *Encoder) EmitFloat32(v float32) error {
	return e.emitNumber(token.FormatFloat(float64(v), 32))
}

// EmitFloat64 writes v with the shortest digits that round trip. NaN and
// infinities are written as null, or "null" as a key.
func (e *Encoder) EmitFloat64(v float64) error {
	return e.emitNumber(token.FormatFloat(v, 64))
}

func (e *Encoder) EmitRune(v rune) error {
	return e.writeToken(StringKind, e.stringAttr(), token.QuoteRune(v))
}

func (e *Encoder) EmitString(v string) error {
	return e.writeToken(StringKind, e.stringAttr(), token.Quote(v))
}

// emitNumber writes a formatted number, enquoted when it is an object key.
func (e *Encoder) emitNumber(v string) error {
	if e.mapKey {
		return e.writeToken(NumberKind, FieldColor, `"`+v+`"`)
	}
	return e.writeToken(NumberKind, ValueColor, v)
}

func (e *Encoder) stringAttr() ColorAttr {
	if e.mapKey {
		return FieldColor
	}
	return ValueColor
}

// Helper functions for writing

func (e *Encoder) writeToken(k Kind, a ColorAttr, s string) error {
	if e.color != nil {
		s = e.color(k, a, s)
	}
	return e.writeString(s)
}

// writeNL starts a new line at the current indent. Compact writes nothing.
func (e *Encoder) writeNL() error {
	if !e.fs.pretty {
		return nil
	}
	if err := e.writeString("\n"); err != nil {
		return err
	}
	n, err := token.WriteSpaces(e.w, e.fs.indent)
	e.offset += int64(n)
	return err
}

func (e *Encoder) writeString(s string) error {
	n, err := io.WriteString(e.w, s)
	e.offset += int64(n)
	return err
}

func (e *Encoder) trace(what string, n int) {
	if !debug.Encode() {
		return
	}
	debug.Logf("encode: %s%s n=%d offset=%d key=%t\n",
		strings.Repeat("  ", e.depth), what, n, e.offset, e.mapKey)
}
