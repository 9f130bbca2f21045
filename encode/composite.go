package encode

import (
	"github.com/signadot/jsonenc/token"
	"github.com/signadot/jsonenc/visit"
)

// composite frames the n items written by f with open and end. Empty
// composites are written as open+end with no whitespace. The indent is
// restored whether or not f succeeds.
func (e *Encoder) composite(k Kind, open, end string, n int, f visit.Func) error {
	e.trace(open+end, n)
	if n == 0 {
		return e.writeToken(k, SepColor, open+end)
	}
	if err := e.writeToken(k, SepColor, open); err != nil {
		return err
	}
	e.fs.enter()
	e.depth++
	err := f(e)
	e.fs.leave()
	e.depth--
	if err != nil {
		return err
	}
	if err := e.writeNL(); err != nil {
		return err
	}
	return e.writeToken(k, SepColor, end)
}

// item starts item idx of a composite: a comma unless first, then a new
// line.
func (e *Encoder) item(k Kind, idx int) error {
	if idx != 0 {
		if err := e.writeToken(k, SepColor, ","); err != nil {
			return err
		}
	}
	return e.writeNL()
}

// field writes an enquoted name and the key value separator.
func (e *Encoder) field(k Kind, name string) error {
	if err := e.writeToken(k, FieldColor, token.Quote(name)); err != nil {
		return err
	}
	return e.writeToken(k, SepColor, e.fs.keyValueSep())
}

// Enums are encoded as strings or objects
//
//	Bunny => "Bunny"
//	Kangaroo(34, "William") => {"variant": "Kangaroo", "fields": [34, "William"]}

func (e *Encoder) EmitEnum(_ string, f visit.Func) error {
	return f(e)
}

func (e *Encoder) EmitEnumVariant(name string, _, n int, f visit.Func) error {
	if n == 0 {
		return e.writeToken(VariantKind, e.stringAttr(), token.Quote(name))
	}
	if e.mapKey {
		return badKey("enum variant " + name)
	}
	return e.composite(VariantKind, "{", "}", 2, func(visit.Encoder) error {
		if err := e.item(VariantKind, 0); err != nil {
			return err
		}
		if err := e.field(VariantKind, "variant"); err != nil {
			return err
		}
		if err := e.writeToken(VariantKind, ValueColor, token.Quote(name)); err != nil {
			return err
		}
		if err := e.item(VariantKind, 1); err != nil {
			return err
		}
		if err := e.field(VariantKind, "fields"); err != nil {
			return err
		}
		return e.composite(ArrayKind, "[", "]", n, f)
	})
}

func (e *Encoder) EmitEnumVariantArg(idx int, f visit.Func) error {
	if e.mapKey {
		return badKey("enum variant field")
	}
	if err := e.item(ArrayKind, idx); err != nil {
		return err
	}
	return f(e)
}

func (e *Encoder) EmitEnumStructVariant(name string, id, n int, f visit.Func) error {
	if e.mapKey {
		return badKey("enum variant " + name)
	}
	return e.EmitEnumVariant(name, id, n, f)
}

// EmitEnumStructVariantField writes the field value positionally; the
// name is not part of the output.
func (e *Encoder) EmitEnumStructVariantField(_ string, idx int, f visit.Func) error {
	if e.mapKey {
		return badKey("enum variant field")
	}
	return e.EmitEnumVariantArg(idx, f)
}

// Structs

func (e *Encoder) EmitStruct(name string, n int, f visit.Func) error {
	if e.mapKey {
		return badKey("struct " + name)
	}
	return e.composite(ObjectKind, "{", "}", n, f)
}

func (e *Encoder) EmitStructField(name string, idx int, f visit.Func) error {
	if e.mapKey {
		return badKey("struct field " + name)
	}
	if err := e.item(ObjectKind, idx); err != nil {
		return err
	}
	if err := e.field(ObjectKind, name); err != nil {
		return err
	}
	return f(e)
}

// Tuples are arrays

func (e *Encoder) EmitTuple(n int, f visit.Func) error {
	if e.mapKey {
		return badKey("tuple")
	}
	return e.EmitSeq(n, f)
}

func (e *Encoder) EmitTupleArg(idx int, f visit.Func) error {
	if e.mapKey {
		return badKey("tuple element")
	}
	return e.EmitSeqElt(idx, f)
}

func (e *Encoder) EmitTupleStruct(name string, n int, f visit.Func) error {
	if e.mapKey {
		return badKey("tuple struct " + name)
	}
	return e.EmitSeq(n, f)
}

func (e *Encoder) EmitTupleStructArg(idx int, f visit.Func) error {
	if e.mapKey {
		return badKey("tuple struct element")
	}
	return e.EmitSeqElt(idx, f)
}

// Options carry no syntax of their own

func (e *Encoder) EmitOption(f visit.Func) error {
	if e.mapKey {
		return badKey("option")
	}
	return f(e)
}

func (e *Encoder) EmitOptionNone() error {
	if e.mapKey {
		return badKey("option")
	}
	return e.EmitNil()
}

func (e *Encoder) EmitOptionSome(f visit.Func) error {
	if e.mapKey {
		return badKey("option")
	}
	return f(e)
}

// Sequences

func (e *Encoder) EmitSeq(n int, f visit.Func) error {
	if e.mapKey {
		return badKey("sequence")
	}
	return e.composite(ArrayKind, "[", "]", n, f)
}

func (e *Encoder) EmitSeqElt(idx int, f visit.Func) error {
	if e.mapKey {
		return badKey("sequence element")
	}
	if err := e.item(ArrayKind, idx); err != nil {
		return err
	}
	return f(e)
}

// Maps

func (e *Encoder) EmitMap(n int, f visit.Func) error {
	if e.mapKey {
		return badKey("map")
	}
	return e.composite(ObjectKind, "{", "}", n, f)
}

// EmitMapEltKey writes the key of entry idx. Exactly the call made by f
// is in key position: strings, runes, numbers and fieldless enum variants
// are accepted, numbers being enquoted.
func (e *Encoder) EmitMapEltKey(idx int, f visit.Func) error {
	if e.mapKey {
		return badKey("map")
	}
	if err := e.item(ObjectKind, idx); err != nil {
		return err
	}
	e.mapKey = true
	defer func() { e.mapKey = false }()
	return f(e)
}

func (e *Encoder) EmitMapEltVal(_ int, f visit.Func) error {
	if e.mapKey {
		return badKey("map")
	}
	if err := e.writeToken(ObjectKind, SepColor, e.fs.keyValueSep()); err != nil {
		return err
	}
	return f(e)
}
