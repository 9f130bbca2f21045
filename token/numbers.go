package token

import (
	"math"
	"strconv"
)

// Null is the JSON null literal.
const Null = "null"

// FormatFloat formats v as a JSON number using the shortest representation
// which round trips at the given bit size (32 or 64).
//
// NaN and the infinities have no JSON number form and are formatted as
// null.
func FormatFloat(v float64, bitSize int) string {
	return string(AppendFloat(nil, v, bitSize))
}

// AppendFloat is like FormatFloat but appends to d.
func AppendFloat(d []byte, v float64, bitSize int) []byte {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return append(d, Null...)
	}
	abs := math.Abs(v)
	mode := byte('f')
	if abs != 0 {
		if bitSize == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bitSize == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			mode = 'e'
		}
	}
	d = strconv.AppendFloat(d, v, mode, -1, bitSize)
	if mode == 'e' {
		// clean up e-09 to e-9
		n := len(d)
		if n >= 4 && d[n-4] == 'e' && d[n-3] == '-' && d[n-2] == '0' {
			d[n-2] = d[n-1]
			d = d[:n-1]
		}
	}
	return d
}

// FormatInt formats v in base 10.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatUint formats v in base 10.
func FormatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
