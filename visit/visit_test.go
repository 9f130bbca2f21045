package visit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordStruct(t *testing.T) {
	v := Struct{Name: "P", Fields: []Field{
		{Name: "a", Value: Int(1)},
		{Name: "b", Value: String("x")},
	}}
	got, err := Record(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Call{
		{Op: "Struct", Name: "P", N: 2},
		{Op: "Field", Name: "a"},
		{Op: "Int", Value: 1},
		{Op: "End"},
		{Op: "Field", Name: "b", Idx: 1},
		{Op: "String", Value: "x"},
		{Op: "End"},
		{Op: "End"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordMapAndOption(t *testing.T) {
	v := Map{
		{Key: Int(7), Value: Some(Bool(true))},
		{Key: String("k"), Value: None},
	}
	got, err := Record(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Call{
		{Op: "Map", N: 2},
		{Op: "Key"},
		{Op: "Int", Value: 7},
		{Op: "End"},
		{Op: "Val"},
		{Op: "Option"},
		{Op: "Some"},
		{Op: "Bool", Value: true},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
		{Op: "Key", Idx: 1},
		{Op: "String", Value: "k"},
		{Op: "End"},
		{Op: "Val", Idx: 1},
		{Op: "Option"},
		{Op: "None"},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordVariants(t *testing.T) {
	v := Seq{
		Variant{Enum: "Animal", Name: "Bunny"},
		Variant{Enum: "Animal", Name: "Kangaroo", ID: 1, Fields: []Encodable{Int(34), String("William")}},
		StructVariant{Enum: "Shape", Name: "Rect", ID: 2, Fields: []Field{{Name: "w", Value: Float(1.5)}}},
		Tuple{Nil},
	}
	got, err := Record(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Call{
		{Op: "Seq", N: 4},
		{Op: "Elt"},
		{Op: "Enum", Name: "Animal"},
		{Op: "Variant", Name: "Bunny"},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
		{Op: "Elt", Idx: 1},
		{Op: "Enum", Name: "Animal"},
		{Op: "Variant", Name: "Kangaroo", N: 2, Idx: 1},
		{Op: "VariantArg"},
		{Op: "Int", Value: 34},
		{Op: "End"},
		{Op: "VariantArg", Idx: 1},
		{Op: "String", Value: "William"},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
		{Op: "Elt", Idx: 2},
		{Op: "Enum", Name: "Shape"},
		{Op: "StructVariant", Name: "Rect", N: 1, Idx: 2},
		{Op: "StructVariantField", Name: "w"},
		{Op: "Float64", Value: 1.5},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
		{Op: "Elt", Idx: 3},
		{Op: "Tuple", N: 1},
		{Op: "TupleArg"},
		{Op: "Nil"},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
		{Op: "End"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	v := Seq{
		Int(1),
		EncodableFunc(func(Encoder) error { return boom }),
		Int(3),
	}
	got, err := Record(v)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	want := []Call{
		{Op: "Seq", N: 3},
		{Op: "Elt"},
		{Op: "Int", Value: 1},
		{Op: "End"},
		{Op: "Elt", Idx: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}
