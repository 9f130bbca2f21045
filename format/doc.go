// Package format names the document formats and output layouts understood
// by the jsonenc tooling.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	l, err := format.ParseLayout("pretty")
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/encode - Encode values as JSON text
//   - github.com/signadot/jsonenc/input - Load documents in a given Format
package format
