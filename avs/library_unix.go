//go:build !windows

package avs

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "libavisynth.dylib"
	}
	return "libavisynth.so"
}

// openLibrary binds the engine into the process with its dependencies
// resolved eagerly, so a broken installation fails here rather than at
// the first call through an entry point.
func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func symbolAddress(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func releaseLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
