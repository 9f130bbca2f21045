package visit

// Some helpers for encoding common shapes without writing closures.

// String is an Encodable string.
type String string

func (s String) Encode(e Encoder) error { return e.EmitString(string(s)) }

// Int is an Encodable int.
type Int int

func (i Int) Encode(e Encoder) error { return e.EmitInt(int(i)) }

// Float is an Encodable float64.
type Float float64

func (f Float) Encode(e Encoder) error { return e.EmitFloat64(float64(f)) }

// Bool is an Encodable bool.
type Bool bool

func (b Bool) Encode(e Encoder) error { return e.EmitBool(bool(b)) }

// Nil encodes as the null scalar.
var Nil = EncodableFunc(func(e Encoder) error { return e.EmitNil() })

// Seq encodes its elements as a sequence.
type Seq []Encodable

func (s Seq) Encode(e Encoder) error {
	return e.EmitSeq(len(s), func(e Encoder) error {
		for i, v := range s {
			if err := e.EmitSeqElt(i, v.Encode); err != nil {
				return err
			}
		}
		return nil
	})
}

// Tuple encodes its elements as a tuple.
type Tuple []Encodable

func (t Tuple) Encode(e Encoder) error {
	return e.EmitTuple(len(t), func(e Encoder) error {
		for i, v := range t {
			if err := e.EmitTupleArg(i, v.Encode); err != nil {
				return err
			}
		}
		return nil
	})
}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   Encodable
	Value Encodable
}

// Map encodes its entries, in order, as a map.
type Map []Entry

func (m Map) Encode(e Encoder) error {
	return e.EmitMap(len(m), func(e Encoder) error {
		for i := range m {
			if err := e.EmitMapEltKey(i, m[i].Key.Encode); err != nil {
				return err
			}
			if err := e.EmitMapEltVal(i, m[i].Value.Encode); err != nil {
				return err
			}
		}
		return nil
	})
}

// Field is one named field of a Struct.
type Field struct {
	Name  string
	Value Encodable
}

// Struct encodes Fields as a struct called Name.
type Struct struct {
	Name   string
	Fields []Field
}

func (s Struct) Encode(e Encoder) error {
	return e.EmitStruct(s.Name, len(s.Fields), func(e Encoder) error {
		for i := range s.Fields {
			if err := e.EmitStructField(s.Fields[i].Name, i, s.Fields[i].Value.Encode); err != nil {
				return err
			}
		}
		return nil
	})
}

// Option encodes Value when present, the absent option otherwise.
type Option struct {
	Value Encodable
}

// Some returns a present Option.
func Some(v Encodable) Option { return Option{Value: v} }

// None is the absent Option.
var None = Option{}

func (o Option) Encode(e Encoder) error {
	return e.EmitOption(func(e Encoder) error {
		if o.Value == nil {
			return e.EmitOptionNone()
		}
		return e.EmitOptionSome(o.Value.Encode)
	})
}

// Variant is an enum value of type Enum whose variant Name is the ID'th
// declared, with positional Fields.
type Variant struct {
	Enum   string
	Name   string
	ID     int
	Fields []Encodable
}

func (v Variant) Encode(e Encoder) error {
	return e.EmitEnum(v.Enum, func(e Encoder) error {
		return e.EmitEnumVariant(v.Name, v.ID, len(v.Fields), func(e Encoder) error {
			for i, f := range v.Fields {
				if err := e.EmitEnumVariantArg(i, f.Encode); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// StructVariant is a Variant with named fields.
type StructVariant struct {
	Enum   string
	Name   string
	ID     int
	Fields []Field
}

func (v StructVariant) Encode(e Encoder) error {
	return e.EmitEnum(v.Enum, func(e Encoder) error {
		return e.EmitEnumStructVariant(v.Name, v.ID, len(v.Fields), func(e Encoder) error {
			for i := range v.Fields {
				if err := e.EmitEnumStructVariantField(v.Fields[i].Name, i, v.Fields[i].Value.Encode); err != nil {
					return err
				}
			}
			return nil
		})
	})
}
