package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Load   bool
	Gen    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("JSONENC_DEBUG_ENCODE")
	d.Load = boolEnv("JSONENC_DEBUG_LOAD")
	d.Gen = boolEnv("JSONENC_DEBUG_GEN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Encode reports whether protocol calls handled by the encoder are traced.
func Encode() bool {
	return d.Encode
}

// Load reports whether document loading is traced.
func Load() bool {
	return d.Load
}

// Gen reports whether code generation is traced.
func Gen() bool {
	return d.Gen
}
