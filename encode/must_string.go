package encode

import "github.com/signadot/jsonenc/visit"

// MustString encodes v and returns the text, panicking on error.
func MustString(v visit.Encodable, opts ...EncodeOption) string {
	s, err := ToString(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
