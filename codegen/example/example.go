// Package example holds structs whose Encode methods are generated by
// jsonenc-gen.
package example

//go:generate go run github.com/signadot/jsonenc/cmd/jsonenc-gen

//jsonenc:generate
type Person struct {
	Name    string `jsonenc:"field=name"`
	Age     int    `jsonenc:"field=age,omitempty"`
	Emails  []string
	Address *Address `jsonenc:"omitempty"`
	Token   string   `jsonenc:"omit"`
}

//jsonenc:generate
type Address struct {
	Street string
	Zip    uint16
}
