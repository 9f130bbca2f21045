package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/signadot/jsonenc/visit"
)

func encodeString(t *testing.T, v visit.Encodable, opts ...EncodeOption) string {
	t.Helper()
	s, err := ToString(v, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func fn(f func(e visit.Encoder) error) visit.Encodable {
	return visit.EncodableFunc(f)
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		v    visit.Encodable
		want string
	}{
		{"nil", visit.Nil, "null"},
		{"true", visit.Bool(true), "true"},
		{"false", visit.Bool(false), "false"},
		{"int", visit.Int(-42), "-42"},
		{"int8", fn(func(e visit.Encoder) error { return e.EmitInt8(math.MinInt8) }), "-128"},
		{"int16", fn(func(e visit.Encoder) error { return e.EmitInt16(math.MaxInt16) }), "32767"},
		{"int32", fn(func(e visit.Encoder) error { return e.EmitInt32(-7) }), "-7"},
		{"int64", fn(func(e visit.Encoder) error { return e.EmitInt64(math.MinInt64) }), "-9223372036854775808"},
		{"uint", fn(func(e visit.Encoder) error { return e.EmitUint(7) }), "7"},
		{"uint8", fn(func(e visit.Encoder) error { return e.EmitUint8(255) }), "255"},
		{"uint16", fn(func(e visit.Encoder) error { return e.EmitUint16(65535) }), "65535"},
		{"uint32", fn(func(e visit.Encoder) error { return e.EmitUint32(1 << 31) }), "2147483648"},
		{"uint64", fn(func(e visit.Encoder) error { return e.EmitUint64(math.MaxUint64) }), "18446744073709551615"},
		{"float", visit.Float(2.5), "2.5"},
		{"float32", fn(func(e visit.Encoder) error { return e.EmitFloat32(0.1) }), "0.1"},
		{"float big", visit.Float(1e21), "1e+21"},
		{"nan", visit.Float(math.NaN()), "null"},
		{"inf", visit.Float(math.Inf(1)), "null"},
		{"neg inf", fn(func(e visit.Encoder) error { return e.EmitFloat32(float32(math.Inf(-1))) }), "null"},
		{"string", visit.String("a\"b\\c\n"), `"a\"b\\c\n"`},
		{"control", visit.String("\x01"), `"\u0001"`},
		{"rune", fn(func(e visit.Encoder) error { return e.EmitRune('"') }), `"\""`},
		{"rune tab", fn(func(e visit.Encoder) error { return e.EmitRune('\t') }), `"\t"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, opt := range []EncodeOption{Compact(), Pretty(2)} {
				got := encodeString(t, tt.v, opt)
				if got != tt.want {
					t.Errorf("expected %q, got %q", tt.want, got)
				}
			}
		})
	}
}

func abStruct() visit.Encodable {
	return visit.Struct{Name: "AB", Fields: []visit.Field{
		{Name: "a", Value: visit.Int(1)},
		{Name: "b", Value: visit.String("x")},
	}}
}

func TestEncodeStruct(t *testing.T) {
	got := encodeString(t, abStruct())
	if want := `{"a":1,"b":"x"}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	got = encodeString(t, abStruct(), Pretty(2))
	if want := "{\n  \"a\": 1,\n  \"b\": \"x\"\n}"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeStructFieldNameEscaped(t *testing.T) {
	v := visit.Struct{Name: "S", Fields: []visit.Field{{Name: `we"ird`, Value: visit.Nil}}}
	got := encodeString(t, v)
	if want := `{"we\"ird":null}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeSeq(t *testing.T) {
	v := visit.Seq{visit.Int(1), visit.Int(2), visit.Int(3)}
	got := encodeString(t, v)
	if want := "[1,2,3]"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	got = encodeString(t, v, Pretty(4))
	if want := "[\n    1,\n    2,\n    3\n]"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeTuples(t *testing.T) {
	tuple := visit.Tuple{visit.Int(1), visit.String("a")}
	if got, want := encodeString(t, tuple), `[1,"a"]`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	ts := fn(func(e visit.Encoder) error {
		return e.EmitTupleStruct("Meters", 1, func(e visit.Encoder) error {
			return e.EmitTupleStructArg(0, visit.Float(3.5).Encode)
		})
	})
	if got, want := encodeString(t, ts), `[3.5]`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := encodeString(t, ts, Pretty(2)), "[\n  3.5\n]"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeEmptyComposites(t *testing.T) {
	tests := []struct {
		name string
		v    visit.Encodable
		want string
	}{
		{"seq", visit.Seq{}, "[]"},
		{"tuple", visit.Tuple{}, "[]"},
		{"map", visit.Map{}, "{}"},
		{"struct", visit.Struct{Name: "Empty"}, "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, opt := range []EncodeOption{Compact(), Pretty(2)} {
				if got := encodeString(t, tt.v, opt); got != tt.want {
					t.Errorf("expected %q, got %q", tt.want, got)
				}
			}
		})
	}

	nested := visit.Struct{Name: "N", Fields: []visit.Field{
		{Name: "a", Value: visit.Seq{}},
		{Name: "b", Value: visit.Map{}},
	}}
	got := encodeString(t, nested, Pretty(2))
	if want := "{\n  \"a\": [],\n  \"b\": {}\n}"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeMap(t *testing.T) {
	v := visit.Map{
		{Key: visit.String("k"), Value: visit.Seq{visit.Int(1)}},
		{Key: visit.Int(7), Value: visit.Bool(false)},
	}
	got := encodeString(t, v)
	if want := `{"k":[1],"7":false}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	got = encodeString(t, v, Pretty(2))
	if want := "{\n  \"k\": [\n    1\n  ],\n  \"7\": false\n}"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeNumericKeys(t *testing.T) {
	tests := []struct {
		name string
		key  visit.Encodable
		want string
	}{
		{"int", visit.Int(7), `{"7":0}`},
		{"negative", fn(func(e visit.Encoder) error { return e.EmitInt64(-3) }), `{"-3":0}`},
		{"uint8", fn(func(e visit.Encoder) error { return e.EmitUint8(9) }), `{"9":0}`},
		{"float", visit.Float(1.5), `{"1.5":0}`},
		{"nan", visit.Float(math.NaN()), `{"null":0}`},
		{"inf", fn(func(e visit.Encoder) error { return e.EmitFloat32(float32(math.Inf(1))) }), `{"null":0}`},
		{"rune", fn(func(e visit.Encoder) error { return e.EmitRune('r') }), `{"r":0}`},
		{"unit variant", visit.Variant{Enum: "E", Name: "Solo"}, `{"Solo":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := visit.Map{{Key: tt.key, Value: visit.Int(0)}}
			if got := encodeString(t, v); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEncodeBadMapKeys(t *testing.T) {
	tests := []struct {
		name string
		key  visit.Encodable
	}{
		{"nil", visit.Nil},
		{"bool", visit.Bool(true)},
		{"seq", visit.Seq{visit.Int(1)}},
		{"empty seq", visit.Seq{}},
		{"map", visit.Map{}},
		{"struct", visit.Struct{Name: "S"}},
		{"tuple", visit.Tuple{}},
		{"option none", visit.None},
		{"option some", visit.Some(visit.String("x"))},
		{"variant with fields", visit.Variant{Enum: "E", Name: "Pair", Fields: []visit.Encodable{visit.Int(1)}}},
		{"struct variant", visit.StructVariant{Enum: "E", Name: "R", Fields: []visit.Field{{Name: "w", Value: visit.Int(1)}}}},
		{"tuple struct", fn(func(e visit.Encoder) error {
			return e.EmitTupleStruct("T", 0, func(visit.Encoder) error { return nil })
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			enc := NewEncoder(&buf)
			err := enc.Encode(visit.Map{{Key: tt.key, Value: visit.Int(0)}})
			if !errors.Is(err, ErrBadMapKey) {
				t.Fatalf("expected ErrBadMapKey, got %v", err)
			}
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("expected ErrBadMapKey to wrap ErrEncoding")
			}
			if enc.mapKey {
				t.Error("map key flag leaked after failure")
			}
		})
	}
}

func TestEncodeMapKeyFlagResetForSibling(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	var firstErr error
	err := enc.EmitMap(2, func(e visit.Encoder) error {
		firstErr = e.EmitMapEltKey(0, visit.Bool(true).Encode)
		if err := e.EmitMapEltKey(1, visit.String("ok").Encode); err != nil {
			return err
		}
		return e.EmitMapEltVal(1, visit.Nil.Encode)
	})
	if !errors.Is(firstErr, ErrBadMapKey) {
		t.Fatalf("expected ErrBadMapKey, got %v", firstErr)
	}
	if err != nil {
		t.Fatalf("unexpected error for sibling key: %v", err)
	}
	if want := `{,"ok":null}`; buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestEncodeMapKeyOnlyCoversOneCall(t *testing.T) {
	v := visit.Map{{Key: visit.String("a"), Value: visit.Bool(true)}}
	if got, want := encodeString(t, v), `{"a":true}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeOption(t *testing.T) {
	if got := encodeString(t, visit.None); got != "null" {
		t.Errorf("expected null, got %q", got)
	}
	if got := encodeString(t, visit.Some(visit.Int(3))); got != "3" {
		t.Errorf("expected 3, got %q", got)
	}
	nested := visit.Some(visit.Seq{visit.Some(visit.String("x")), visit.None})
	if got, want := encodeString(t, nested), `["x",null]`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func pair() visit.Encodable {
	return visit.Variant{Enum: "E", Name: "Pair", ID: 1, Fields: []visit.Encodable{visit.Int(1), visit.Int(2)}}
}

func TestEncodeEnum(t *testing.T) {
	solo := visit.Variant{Enum: "E", Name: "Solo"}
	if got := encodeString(t, solo); got != `"Solo"` {
		t.Errorf("expected %q, got %q", `"Solo"`, got)
	}
	if got := encodeString(t, solo, Pretty(2)); got != `"Solo"` {
		t.Errorf("expected %q, got %q", `"Solo"`, got)
	}
	if got, want := encodeString(t, pair()), `{"variant":"Pair","fields":[1,2]}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	want := "{\n  \"variant\": \"Pair\",\n  \"fields\": [\n    1,\n    2\n  ]\n}"
	if got := encodeString(t, pair(), Pretty(2)); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	kangaroo := visit.Variant{Enum: "Animal", Name: "Kangaroo", Fields: []visit.Encodable{visit.Int(34), visit.String("William")}}
	if got, want := encodeString(t, kangaroo), `{"variant":"Kangaroo","fields":[34,"William"]}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeStructVariantDropsNames(t *testing.T) {
	v := visit.StructVariant{Enum: "Shape", Name: "Rect", Fields: []visit.Field{
		{Name: "w", Value: visit.Int(3)},
		{Name: "h", Value: visit.Int(4)},
	}}
	if got, want := encodeString(t, v), `{"variant":"Rect","fields":[3,4]}`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	empty := visit.StructVariant{Enum: "Shape", Name: "Dot"}
	if got, want := encodeString(t, empty), `"Dot"`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncodeNestedPretty(t *testing.T) {
	v := visit.Seq{pair(), visit.Struct{Name: "S", Fields: []visit.Field{
		{Name: "m", Value: visit.Map{{Key: visit.Int(1), Value: visit.Tuple{visit.Nil}}}},
	}}}
	want := `[
  {
    "variant": "Pair",
    "fields": [
      1,
      2
    ]
  },
  {
    "m": {
      "1": [
        null
      ]
    }
  }
]`
	if got := encodeString(t, v, Pretty(2)); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	wantCompact := `[{"variant":"Pair","fields":[1,2]},{"m":{"1":[null]}}]`
	if got := encodeString(t, v); got != wantCompact {
		t.Errorf("expected %q, got %q", wantCompact, got)
	}
}

func TestEncodePrettyDefaultIndent(t *testing.T) {
	got := encodeString(t, visit.Seq{visit.Int(1)}, Pretty(0))
	if want := "[\n  1\n]"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEncoderDepthRestored(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Pretty(3))
	var inner int
	v := visit.Seq{fn(func(e visit.Encoder) error {
		inner = enc.Depth()
		return e.EmitNil()
	})}
	if err := enc.Encode(visit.Seq{v}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner != 2 {
		t.Errorf("expected depth 2 inside, got %d", inner)
	}
	if enc.Depth() != 0 || enc.fs.indent != 0 {
		t.Errorf("expected depth and indent restored, got %d and %d", enc.Depth(), enc.fs.indent)
	}

	boom := errors.New("boom")
	err := enc.Encode(visit.Seq{visit.Seq{fn(func(visit.Encoder) error { return boom })}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if enc.Depth() != 0 || enc.fs.indent != 0 {
		t.Errorf("expected depth and indent restored after failure, got %d and %d", enc.Depth(), enc.fs.indent)
	}
}

type failWriter struct {
	after int
	n     int
	err   error
}

func (w *failWriter) Write(d []byte) (int, error) {
	if w.n+len(d) > w.after {
		return 0, w.err
	}
	w.n += len(d)
	return len(d), nil
}

func TestEncodeSinkError(t *testing.T) {
	sinkErr := errors.New("disk full")
	for _, after := range []int{0, 1, 5, 10, 20} {
		w := &failWriter{after: after, err: sinkErr}
		err := Encode(pair(), w, Pretty(2))
		if err != sinkErr {
			t.Errorf("after %d: expected sink error unchanged, got %v", after, err)
		}
		if errors.Is(err, ErrEncoding) {
			t.Errorf("after %d: sink error must not be an encoding error", after)
		}
	}
}

func TestEncodeStopsAfterError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	calls := 0
	v := visit.Seq{
		visit.Int(1),
		fn(func(visit.Encoder) error { return boom }),
		fn(func(e visit.Encoder) error { calls++; return e.EmitNil() }),
	}
	err := Encode(v, &buf)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no calls after failure, got %d", calls)
	}
	if buf.String() != "[1," {
		t.Errorf("expected truncated %q, got %q", "[1,", buf.String())
	}
}

func TestEncoderResetAndOffset(t *testing.T) {
	var a, b bytes.Buffer
	enc := NewEncoder(&a, Pretty(2))
	if err := enc.Encode(abStruct()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.Offset() != int64(a.Len()) {
		t.Errorf("expected offset %d, got %d", a.Len(), enc.Offset())
	}
	enc.Reset(&b)
	if enc.Offset() != 0 {
		t.Errorf("expected offset reset, got %d", enc.Offset())
	}
	if err := enc.Encode(abStruct()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("expected identical output after reset, got %q and %q", a.String(), b.String())
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(visit.Seq{visit.String("a")}); got != `["a"]` {
		t.Errorf("expected %q, got %q", `["a"]`, got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustString(visit.Map{{Key: visit.Nil, Value: visit.Nil}})
}

func TestLayoutFromOpts(t *testing.T) {
	if !LayoutFromOpts().IsCompact() {
		t.Error("expected compact default")
	}
	if !LayoutFromOpts(Compact(), Pretty(2)).IsPretty() {
		t.Error("expected last option to win")
	}
}
