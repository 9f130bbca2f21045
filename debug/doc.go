// Package debug provides environment controlled tracing.
//
// Tracing is enabled per area by setting one of
//
//	JSONENC_DEBUG_ENCODE
//	JSONENC_DEBUG_LOAD
//	JSONENC_DEBUG_GEN
//
// to a value accepted by strconv.ParseBool. Traces go to stderr.
package debug
