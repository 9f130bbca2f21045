package gomap

import (
	"bytes"
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/signadot/jsonenc/encode"
	"github.com/signadot/jsonenc/token"
	"github.com/signadot/jsonenc/visit"
)

var (
	encodableType     = reflect.TypeFor[visit.Encodable]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	orderedType       = reflect.TypeFor[Ordered]()
)

// ToJSON encodes v as JSON text using the encode options in opts.
func ToJSON(v any, opts ...MapOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode.Encode(Value(v, opts...), &buf, ToEncodeOptions(opts...)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Value returns an Encodable for v.
//
// Mapping happens during Encode: errors in v, such as unsupported kinds or
// circular references, are returned from Encode as *MarshalError.
func Value(v any, opts ...MapOption) visit.Encodable {
	return &value{v: v, cfg: newMapConfig(opts)}
}

type value struct {
	v   any
	cfg *mapConfig
}

func (x *value) Encode(e visit.Encoder) error {
	return newWalker(x.cfg).walk(e, reflect.ValueOf(x.v), "")
}

type walker struct {
	cfg *mapConfig
	// pointers, slices and maps on the path to the current value
	visited map[visitKey]string
}

// visitKey identifies a reference. Distinct values may share an address,
// such as a struct and its first field, so the type and length are part
// of the key.
type visitKey struct {
	ptr uintptr
	typ reflect.Type
	len int
}

func newWalker(cfg *mapConfig) *walker {
	if cfg == nil {
		cfg = &mapConfig{}
	}
	return &walker{cfg: cfg, visited: make(map[visitKey]string)}
}

func (w *walker) walk(e visit.Encoder, val reflect.Value, path string) error {
	if !val.IsValid() {
		return e.EmitNil()
	}
	typ := val.Type()
	switch typ.Kind() {
	case reflect.Pointer:
		return w.pointer(e, val, path)
	case reflect.Interface:
		if val.IsNil() {
			return e.EmitNil()
		}
		return w.walk(e, val.Elem(), path)
	}
	if typ == orderedType {
		return w.ordered(e, val.Interface().(Ordered), path)
	}
	if enc, ok := asEncodable(val); ok {
		return enc.Encode(e)
	}
	if tm, ok := asTextMarshaler(val); ok {
		return w.text(e, tm, path)
	}

	switch typ.Kind() {
	case reflect.Bool:
		return e.EmitBool(val.Bool())
	case reflect.Int:
		return e.EmitInt(int(val.Int()))
	case reflect.Int8:
		return e.EmitInt8(int8(val.Int()))
	case reflect.Int16:
		return e.EmitInt16(int16(val.Int()))
	case reflect.Int32:
		return e.EmitInt32(int32(val.Int()))
	case reflect.Int64:
		return e.EmitInt64(val.Int())
	case reflect.Uint:
		return e.EmitUint(uint(val.Uint()))
	case reflect.Uint8:
		return e.EmitUint8(uint8(val.Uint()))
	case reflect.Uint16:
		return e.EmitUint16(uint16(val.Uint()))
	case reflect.Uint32:
		return e.EmitUint32(uint32(val.Uint()))
	case reflect.Uint64, reflect.Uintptr:
		return e.EmitUint64(val.Uint())
	case reflect.Float32:
		return e.EmitFloat32(float32(val.Float()))
	case reflect.Float64:
		return e.EmitFloat64(val.Float())
	case reflect.String:
		return e.EmitString(val.String())
	case reflect.Slice, reflect.Array:
		return w.seq(e, val, path)
	case reflect.Map:
		return w.mapValue(e, val, path)
	case reflect.Struct:
		return w.structValue(e, val, path)
	default:
		return &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func (w *walker) pointer(e visit.Encoder, val reflect.Value, path string) error {
	if val.IsNil() {
		return e.EmitOption(func(e visit.Encoder) error {
			return e.EmitOptionNone()
		})
	}
	if enc, ok := asEncodable(val); ok {
		return enc.Encode(e)
	}
	if tm, ok := asTextMarshaler(val); ok {
		return w.text(e, tm, path)
	}
	key := visitKey{ptr: val.Pointer(), typ: val.Type()}
	if err := w.enter(key, path); err != nil {
		return err
	}
	defer delete(w.visited, key)
	return e.EmitOption(func(e visit.Encoder) error {
		return e.EmitOptionSome(func(e visit.Encoder) error {
			return w.walk(e, val.Elem(), path)
		})
	})
}

// enter marks key as being on the current path, failing if it already is.
func (w *walker) enter(key visitKey, path string) error {
	if prev, seen := w.visited[key]; seen {
		if prev == "" {
			prev = "<root>"
		}
		return &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("circular reference detected (previously seen at %s)", prev),
		}
	}
	w.visited[key] = path
	return nil
}

func (w *walker) text(e visit.Encoder, tm encoding.TextMarshaler, path string) error {
	d, err := tm.MarshalText()
	if err != nil {
		return &MarshalError{FieldPath: path, Message: "MarshalText: " + err.Error(), Err: err}
	}
	return e.EmitString(string(d))
}

func (w *walker) seq(e visit.Encoder, val reflect.Value, path string) error {
	n := val.Len()
	if val.Kind() == reflect.Slice && n > 0 {
		key := visitKey{ptr: val.Pointer(), typ: val.Type(), len: n}
		if err := w.enter(key, path); err != nil {
			return err
		}
		defer delete(w.visited, key)
	}
	return e.EmitSeq(n, func(e visit.Encoder) error {
		for i := 0; i < n; i++ {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			err := e.EmitSeqElt(i, func(e visit.Encoder) error {
				return w.walk(e, val.Index(i), elemPath)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// mapValue encodes the entries of a Go map sorted by the text of their
// keys. A nil map is null.
func (w *walker) mapValue(e visit.Encoder, val reflect.Value, path string) error {
	if val.IsNil() {
		return e.EmitNil()
	}
	key := visitKey{ptr: val.Pointer(), typ: val.Type()}
	if err := w.enter(key, path); err != nil {
		return err
	}
	defer delete(w.visited, key)

	type entry struct {
		key  reflect.Value
		text string
	}
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		text, err := keyText(iter.Key(), path)
		if err != nil {
			return err
		}
		entries = append(entries, entry{key: iter.Key(), text: text})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.text, b.text)
	})

	return e.EmitMap(len(entries), func(e visit.Encoder) error {
		for i := range entries {
			ent := &entries[i]
			entPath := joinPath(path, ent.text)
			err := e.EmitMapEltKey(i, func(e visit.Encoder) error {
				return w.walk(e, ent.key, entPath)
			})
			if err != nil {
				return err
			}
			err = e.EmitMapEltVal(i, func(e visit.Encoder) error {
				return w.walk(e, val.MapIndex(ent.key), entPath)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// keyText is the text a map key sorts by.
func keyText(k reflect.Value, path string) (string, error) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return token.Null, nil
		}
		k = k.Elem()
	}
	if tm, ok := asTextMarshaler(k); ok {
		d, err := tm.MarshalText()
		if err != nil {
			return "", &MarshalError{FieldPath: path, Message: "MarshalText: " + err.Error(), Err: err}
		}
		return string(d), nil
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return token.FormatInt(k.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return token.FormatUint(k.Uint()), nil
	case reflect.Float32:
		return token.FormatFloat(k.Float(), 32), nil
	case reflect.Float64:
		return token.FormatFloat(k.Float(), 64), nil
	case reflect.Bool:
		return strconv.FormatBool(k.Bool()), nil
	default:
		return fmt.Sprint(k.Interface()), nil
	}
}

type structField struct {
	name string
	val  reflect.Value
}

func (w *walker) structValue(e visit.Encoder, val reflect.Value, path string) error {
	fields, err := w.structFields(val, path, nil)
	if err != nil {
		return err
	}
	return e.EmitStruct(val.Type().Name(), len(fields), func(e visit.Encoder) error {
		for i := range fields {
			f := &fields[i]
			fieldPath := joinPath(path, f.name)
			err := e.EmitStructField(f.name, i, func(e visit.Encoder) error {
				return w.walk(e, f.val, fieldPath)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// structFields appends the encoded fields of val to fields. Untagged
// embedded structs are flattened into their parent.
func (w *walker) structFields(val reflect.Value, path string, fields []structField) ([]structField, error) {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, err := ParseFieldTag(sf.Tag.Get(TagKey))
		if err != nil {
			return nil, &MarshalError{FieldPath: joinPath(path, sf.Name), Message: err.Error(), Err: err}
		}
		if tag.Omit {
			continue
		}
		fv := val.Field(i)
		if sf.Anonymous && tag.Name == "" {
			if ev, ok := embeddedStruct(fv); ok {
				if ev.IsValid() {
					fields, err = w.structFields(ev, path, fields)
					if err != nil {
						return nil, err
					}
				}
				continue
			}
		}
		if (tag.OmitEmpty || w.cfg.omitEmpty) && fv.IsZero() {
			continue
		}
		name := sf.Name
		if tag.Name != "" {
			name = tag.Name
		}
		for j := range fields {
			if fields[j].name == name {
				return nil, &MarshalError{
					FieldPath: path,
					Message:   fmt.Sprintf("field name conflict: %q", name),
				}
			}
		}
		fields = append(fields, structField{name: name, val: fv})
	}
	return fields, nil
}

// embeddedStruct reports whether fv is an embedded struct, or pointer to
// struct, to be flattened. The returned value is invalid for a nil pointer.
func embeddedStruct(fv reflect.Value) (reflect.Value, bool) {
	t := fv.Type()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	if t.Implements(encodableType) || t.Implements(textMarshalerType) ||
		reflect.PointerTo(t).Implements(encodableType) || reflect.PointerTo(t).Implements(textMarshalerType) {
		return reflect.Value{}, false
	}
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return reflect.Value{}, true
		}
		return fv.Elem(), true
	}
	return fv, true
}

func (w *walker) ordered(e visit.Encoder, o Ordered, path string) error {
	if len(o) > 0 {
		key := visitKey{ptr: reflect.ValueOf(o).Pointer(), typ: orderedType, len: len(o)}
		if err := w.enter(key, path); err != nil {
			return err
		}
		defer delete(w.visited, key)
	}
	return e.EmitMap(len(o), func(e visit.Encoder) error {
		for i := range o {
			p := &o[i]
			pairPath := joinPath(path, fmt.Sprint(p.Key))
			err := e.EmitMapEltKey(i, func(e visit.Encoder) error {
				return w.walk(e, reflect.ValueOf(p.Key), pairPath)
			})
			if err != nil {
				return err
			}
			err = e.EmitMapEltVal(i, func(e visit.Encoder) error {
				return w.walk(e, reflect.ValueOf(p.Value), pairPath)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func asEncodable(val reflect.Value) (visit.Encodable, bool) {
	if val.Type().Implements(encodableType) {
		return val.Interface().(visit.Encodable), true
	}
	if val.CanAddr() && reflect.PointerTo(val.Type()).Implements(encodableType) {
		return val.Addr().Interface().(visit.Encodable), true
	}
	return nil, false
}

func asTextMarshaler(val reflect.Value) (encoding.TextMarshaler, bool) {
	if val.Type().Implements(textMarshalerType) {
		return val.Interface().(encoding.TextMarshaler), true
	}
	if val.CanAddr() && reflect.PointerTo(val.Type()).Implements(textMarshalerType) {
		return val.Addr().Interface().(encoding.TextMarshaler), true
	}
	return nil, false
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
