//go:build !debug

package avs

import "io"

// dumpSearchPath is a no-op in release builds; see envdump_debug.go.
func dumpSearchPath(io.Writer) {}
