// Package gomap drives the encodable protocol for arbitrary Go values.
//
// # Usage
//
//	type User struct {
//	    Name  string
//	    Age   int    `jsonenc:"field=age"`
//	    Token string `jsonenc:"omit"`
//	}
//	err := encode.Encode(gomap.Value(user), os.Stdout, encode.Pretty(2))
//
//	// or
//	d, err := gomap.ToJSON(user, gomap.EncodeOptions(encode.Compact()))
//
// Values which implement visit.Encodable encode themselves. Otherwise
// reflection maps Go kinds onto protocol calls: structs to structs, maps to
// maps with keys sorted by their text, slices and arrays to sequences,
// pointers to options and encoding.TextMarshaler values to strings.
//
// Ordered keeps the key order of loaded documents.
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/visit - the protocol
//   - github.com/signadot/jsonenc/codegen - generated Encode methods
package gomap
