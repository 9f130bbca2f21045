// Package token provides the stateless text primitives used to write JSON:
// string and rune quoting, number formatting and indentation.
//
// # Usage
//
//	token.Quote("a\tb")          // "\"a\\tb\""
//	token.FormatFloat(1.5, 64)   // "1.5"
//	token.FormatFloat(math.NaN(), 64) // "null"
//	token.WriteSpaces(w, 4)
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/encode - the encoder built on these primitives
package token
