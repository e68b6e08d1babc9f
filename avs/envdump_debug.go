//go:build debug

package avs

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// dumpSearchPath prints the loader search path variable for
// diagnostics. Debug builds only; it never affects behavior or the
// exit code.
func dumpSearchPath(w io.Writer) {
	name := "LD_LIBRARY_PATH"
	switch runtime.GOOS {
	case "windows":
		name = "PATH"
	case "darwin":
		name = "DYLD_LIBRARY_PATH"
	}
	fmt.Fprintf(w, "%s=%s\n\n", name, os.Getenv(name))
}
