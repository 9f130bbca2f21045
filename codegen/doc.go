// Package codegen generates Encode methods for Go structs.
//
// A struct is selected by a directive in its doc comment:
//
//	//jsonenc:generate
//	type Person struct {
//	    Name string `jsonenc:"field=name"`
//	    Tags []string
//	}
//
// The generated value receiver method makes the struct a visit.Encodable
// without reflection for fields of basic type. Other fields are encoded with
// gomap.Value. Struct tags are read the same way as by gomap.
//
// Generated code appears in <package>_jsonenc.go files.
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/gomap - reflection based encoding
//   - github.com/signadot/jsonenc/visit - the protocol
package codegen
