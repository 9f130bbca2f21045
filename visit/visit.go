package visit

// Func encodes a nested part of a value against e.
type Func func(e Encoder) error

// Encodable is implemented by values which describe themselves to an
// Encoder.
type Encodable interface {
	Encode(e Encoder) error
}

// EncodableFunc adapts a function to Encodable.
type EncodableFunc func(e Encoder) error

func (f EncodableFunc) Encode(e Encoder) error { return f(e) }

// Encoder receives protocol calls.
type Encoder interface {
	EmitNil() error
	EmitBool(v bool) error

	EmitInt(v int) error
	EmitInt8(v int8) error
	EmitInt16(v int16) error
	EmitInt32(v int32) error
	EmitInt64(v int64) error

	EmitUint(v uint) error
	EmitUint8(v uint8) error
	EmitUint16(v uint16) error
	EmitUint32(v uint32) error
	EmitUint64(v uint64) error

	EmitFloat32(v float32) error
	EmitFloat64(v float64) error

	EmitRune(v rune) error
	EmitString(v string) error

	// EmitEnum wraps the single EmitEnumVariant or EmitEnumStructVariant
	// call describing an enum value.
	EmitEnum(name string, f Func) error
	// EmitEnumVariant describes variant name (declaration index id) with
	// n positional fields, issued by f with EmitEnumVariantArg.
	EmitEnumVariant(name string, id, n int, f Func) error
	EmitEnumVariantArg(idx int, f Func) error
	// EmitEnumStructVariant is EmitEnumVariant for variants with named
	// fields, issued by f with EmitEnumStructVariantField.
	EmitEnumStructVariant(name string, id, n int, f Func) error
	EmitEnumStructVariantField(name string, idx int, f Func) error

	EmitStruct(name string, n int, f Func) error
	EmitStructField(name string, idx int, f Func) error

	EmitTuple(n int, f Func) error
	EmitTupleArg(idx int, f Func) error
	EmitTupleStruct(name string, n int, f Func) error
	EmitTupleStructArg(idx int, f Func) error

	// EmitOption wraps exactly one EmitOptionNone or EmitOptionSome call.
	EmitOption(f Func) error
	EmitOptionNone() error
	EmitOptionSome(f Func) error

	EmitSeq(n int, f Func) error
	EmitSeqElt(idx int, f Func) error

	// EmitMap describes n entries. f issues, for each entry, an
	// EmitMapEltKey call followed by an EmitMapEltVal call.
	EmitMap(n int, f Func) error
	EmitMapEltKey(idx int, f Func) error
	EmitMapEltVal(idx int, f Func) error
}
