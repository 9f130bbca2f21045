package visit

import "fmt"

// Call is one protocol call seen by a Recorder.
type Call struct {
	Op    string
	Name  string
	N     int
	Idx   int
	Value any
}

func (c Call) String() string {
	switch {
	case c.Value != nil:
		return fmt.Sprintf("%s(%#v)", c.Op, c.Value)
	case c.Name != "":
		return fmt.Sprintf("%s(%q, %d, %d)", c.Op, c.Name, c.N, c.Idx)
	default:
		return fmt.Sprintf("%s(%d, %d)", c.Op, c.N, c.Idx)
	}
}

// Recorder is an Encoder which records the calls it receives, in order,
// and runs every nested Func. End marks the return of a composite call.
type Recorder struct {
	Calls []Call
}

var _ Encoder = (*Recorder)(nil)

// Record runs v against a new Recorder and returns the calls.
func Record(v Encodable) ([]Call, error) {
	r := &Recorder{}
	err := v.Encode(r)
	return r.Calls, err
}

func (r *Recorder) scalar(op string, v any) error {
	r.Calls = append(r.Calls, Call{Op: op, Value: v})
	return nil
}

func (r *Recorder) nested(c Call, f Func) error {
	r.Calls = append(r.Calls, c)
	if err := f(r); err != nil {
		return err
	}
	r.Calls = append(r.Calls, Call{Op: "End"})
	return nil
}

func (r *Recorder) EmitNil() error                { return r.scalar("Nil", nil) }
func (r *Recorder) EmitBool(v bool) error         { return r.scalar("Bool", v) }
func (r *Recorder) EmitInt(v int) error           { return r.scalar("Int", v) }
func (r *Recorder) EmitInt8(v int8) error         { return r.scalar("Int8", v) }
func (r *Recorder) EmitInt16(v int16) error       { return r.scalar("Int16", v) }
func (r *Recorder) EmitInt32(v int32) error       { return r.scalar("Int32", v) }
func (r *Recorder) EmitInt64(v int64) error       { return r.scalar("Int64", v) }
func (r *Recorder) EmitUint(v uint) error         { return r.scalar("Uint", v) }
func (r *Recorder) EmitUint8(v uint8) error       { return r.scalar("Uint8", v) }
func (r *Recorder) EmitUint16(v uint16) error     { return r.scalar("Uint16", v) }
func (r *Recorder) EmitUint32(v uint32) error     { return r.scalar("Uint32", v) }
func (r *Recorder) EmitUint64(v uint64) error     { return r.scalar("Uint64", v) }
func (r *Recorder) EmitFloat32(v float32) error   { return r.scalar("Float32", v) }
func (r *Recorder) EmitFloat64(v float64) error   { return r.scalar("Float64", v) }
func (r *Recorder) EmitRune(v rune) error         { return r.scalar("Rune", v) }
func (r *Recorder) EmitString(v string) error     { return r.scalar("String", v) }
func (r *Recorder) EmitOptionNone() error         { return r.scalar("None", nil) }
func (r *Recorder) EmitOption(f Func) error       { return r.nested(Call{Op: "Option"}, f) }
func (r *Recorder) EmitOptionSome(f Func) error   { return r.nested(Call{Op: "Some"}, f) }
func (r *Recorder) EmitSeq(n int, f Func) error   { return r.nested(Call{Op: "Seq", N: n}, f) }
func (r *Recorder) EmitMap(n int, f Func) error   { return r.nested(Call{Op: "Map", N: n}, f) }
func (r *Recorder) EmitTuple(n int, f Func) error { return r.nested(Call{Op: "Tuple", N: n}, f) }

func (r *Recorder) EmitEnum(name string, f Func) error {
	return r.nested(Call{Op: "Enum", Name: name}, f)
}

func (r *Recorder) EmitEnumVariant(name string, id, n int, f Func) error {
	return r.nested(Call{Op: "Variant", Name: name, N: n, Idx: id}, f)
}

func (r *Recorder) EmitEnumVariantArg(idx int, f Func) error {
	return r.nested(Call{Op: "VariantArg", Idx: idx}, f)
}

func (r *Recorder) EmitEnumStructVariant(name string, id, n int, f Func) error {
	return r.nested(Call{Op: "StructVariant", Name: name, N: n, Idx: id}, f)
}

func (r *Recorder) EmitEnumStructVariantField(name string, idx int, f Func) error {
	return r.nested(Call{Op: "StructVariantField", Name: name, Idx: idx}, f)
}

func (r *Recorder) EmitStruct(name string, n int, f Func) error {
	return r.nested(Call{Op: "Struct", Name: name, N: n}, f)
}

func (r *Recorder) EmitStructField(name string, idx int, f Func) error {
	return r.nested(Call{Op: "Field", Name: name, Idx: idx}, f)
}

func (r *Recorder) EmitTupleArg(idx int, f Func) error {
	return r.nested(Call{Op: "TupleArg", Idx: idx}, f)
}

func (r *Recorder) EmitTupleStruct(name string, n int, f Func) error {
	return r.nested(Call{Op: "TupleStruct", Name: name, N: n}, f)
}

func (r *Recorder) EmitTupleStructArg(idx int, f Func) error {
	return r.nested(Call{Op: "TupleStructArg", Idx: idx}, f)
}

func (r *Recorder) EmitSeqElt(idx int, f Func) error {
	return r.nested(Call{Op: "Elt", Idx: idx}, f)
}

func (r *Recorder) EmitMapEltKey(idx int, f Func) error {
	return r.nested(Call{Op: "Key", Idx: idx}, f)
}

func (r *Recorder) EmitMapEltVal(idx int, f Func) error {
	return r.nested(Call{Op: "Val", Idx: idx}, f)
}
