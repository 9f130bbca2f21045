package gomap

import (
	"fmt"

	"github.com/signadot/jsonenc/visit"
)

// Pair is one key value pair of an Ordered map.
type Pair struct {
	Key   any
	Value any
}

// Ordered is a map which encodes its pairs in order. Loaded documents use
// it for objects so that re-encoding keeps their key order.
type Ordered []Pair

func (o Ordered) Encode(e visit.Encoder) error {
	return newWalker(nil).ordered(e, o, "")
}

// Get returns the value of the first pair whose key is k.
func (o Ordered) Get(k any) (any, bool) {
	for i := range o {
		if o[i].Key == k {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Plain returns v with every Ordered replaced by a map[string]any, keys
// taking their fmt.Sprint form, recursively through []any.
func Plain(v any) any {
	switch x := v.(type) {
	case Ordered:
		m := make(map[string]any, len(x))
		for i := range x {
			m[fmt.Sprint(x[i].Key)] = Plain(x[i].Value)
		}
		return m
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = Plain(x[i])
		}
		return res
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[k] = Plain(e)
		}
		return m
	default:
		return v
	}
}
