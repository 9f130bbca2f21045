package example

import (
	"testing"

	"github.com/signadot/jsonenc/encode"
)

func TestGeneratedEncode(t *testing.T) {
	cases := []struct {
		in   Person
		want string
	}{
		{Person{Name: "Ann", Token: "t"}, `{"name":"Ann","Emails":[]}`},
		{
			Person{Name: "Bo", Age: 3, Emails: []string{"b@x"}, Address: &Address{Street: "Main", Zip: 7}},
			`{"name":"Bo","age":3,"Emails":["b@x"],"Address":{"Street":"Main","Zip":7}}`,
		},
	}
	for _, c := range cases {
		got, err := encode.ToString(c.in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}

func TestGeneratedEncodePretty(t *testing.T) {
	got := encode.MustString(Address{Street: "Elm", Zip: 1}, encode.Pretty(2))
	want := "{\n  \"Street\": \"Elm\",\n  \"Zip\": 1\n}"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
