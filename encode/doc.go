// Package encode writes values described through the visit protocol as
// JSON text.
//
// # Usage
//
//	// Compact
//	err := encode.Encode(v, w)
//
//	// Pretty, two spaces per level
//	err := encode.Encode(v, w, encode.Pretty(2))
//
//	// To a string
//	s, err := encode.ToString(v, encode.Pretty(4))
//
// Output is streamed to the writer as protocol calls arrive. The first
// error stops the encode and is returned; the writer may then hold a
// truncated document.
//
// # Mapping
//
//   - null, bool, numbers and strings map to the JSON scalars. NaN and
//     infinities are written as null.
//   - Structs and maps are objects, sequences, tuples and tuple structs
//     are arrays. Empty composites are written as {} or [].
//   - Options are null when absent and the bare value when present.
//   - Enum variants without fields are strings holding the variant name.
//     Variants with fields are {"variant": name, "fields": [...]}.
//
// Object keys must be strings. In key position numbers are enquoted and
// null, bool, options, composites and enum variants with fields fail with
// ErrBadMapKey.
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/visit - the encodable protocol
//   - github.com/signadot/jsonenc/gomap - Encodable for arbitrary Go values
package encode
