package token

import (
	"encoding/hex"
	"io"
	"unicode"
	"unicode/utf8"
)

// Quote returns v as a double quoted JSON string.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// QuoteRune returns r as a double quoted JSON string of length one.
func QuoteRune(r rune) string {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return Quote(string(buf[:n]))
}

// AppendQuote appends the double quoted JSON form of v to d.
//
// Quotes, backslashes and control characters are escaped. Control
// characters without a short escape use the \uXXXX form. Invalid UTF-8
// is replaced with U+FFFD.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return append(d, '"')
}

// WriteQuoted writes the quoted form of v to w.
func WriteQuoted(w io.Writer, v string) (int, error) {
	return w.Write(AppendQuote(make([]byte, 0, len(v)+2), v))
}

var spaces = []byte("                                                                ")

// WriteSpaces writes n spaces to w.
func WriteSpaces(w io.Writer, n int) (int, error) {
	ttl := 0
	for n > 0 {
		k := min(n, len(spaces))
		m, err := w.Write(spaces[:k])
		ttl += m
		if err != nil {
			return ttl, err
		}
		n -= k
	}
	return ttl, nil
}
