// Package visit defines the encodable protocol: the sequence of typed calls
// a value issues to describe its own shape to an encoder.
//
// A value implements Encodable by calling methods of an Encoder. Scalars are
// one call each. Composites are an opening call which receives the number of
// items up front and a Func that issues one item call per item, in order,
// each item call wrapping the encoding of that item's value:
//
//	func (p Point) Encode(e visit.Encoder) error {
//	    return e.EmitStruct("Point", 2, func(e visit.Encoder) error {
//	        if err := e.EmitStructField("x", 0, func(e visit.Encoder) error {
//	            return e.EmitInt(p.X)
//	        }); err != nil {
//	            return err
//	        }
//	        return e.EmitStructField("y", 1, func(e visit.Encoder) error {
//	            return e.EmitInt(p.Y)
//	        })
//	    })
//	}
//
// The count given to an opening call must equal the number of item calls
// issued before it returns. Encoders are not required to detect violations.
//
// Every call returns the first error encountered and callers must stop
// issuing calls once one has been returned.
//
// # Related Packages
//
//   - github.com/signadot/jsonenc/encode - JSON text Encoder
//   - github.com/signadot/jsonenc/gomap - Encodable for arbitrary Go values
package visit
