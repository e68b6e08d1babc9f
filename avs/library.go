package avs

import (
	"errors"
	"fmt"
)

// LibraryName is the well-known name the OS loader resolves for the
// installed AviSynth engine on this platform.
var LibraryName = libraryName()

var errLibraryClosed = errors.New("library handle already released")

// Library wraps an OS-level loaded-module handle for the AviSynth engine.
// A Library is owned by the scope that opened it and must be released
// exactly once via Close; Close is safe to call from a defer on every
// exit path.
type Library struct {
	handle uintptr
}

// Open loads the AviSynth engine by its well-known name, following the
// OS loader's standard search order. The returned error carries the
// platform error detail when the load fails.
func Open() (*Library, error) {
	handle, err := openLibrary(LibraryName)
	if err != nil || handle == 0 {
		return nil, &LoadError{Name: LibraryName, Sys: sysErrorFrom(err)}
	}
	return &Library{handle: handle}, nil
}

// Close releases the module mapping. Only the first call releases;
// subsequent calls are no-ops.
func (l *Library) Close() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	handle := l.handle
	l.handle = 0
	return releaseLibrary(handle)
}

// Valid reports whether the library is loaded and not yet released.
func (l *Library) Valid() bool {
	return l != nil && l.handle != 0
}

// Symbol resolves a named entry point from the loaded module. A missing
// symbol is reported as an error carrying the platform detail; the
// address is never zero on success.
func (l *Library) Symbol(name string) (uintptr, error) {
	if !l.Valid() {
		return 0, errLibraryClosed
	}
	addr, err := symbolAddress(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("symbol %q not found in %s: %w", name, LibraryName, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("symbol %q resolved to a null address in %s", name, LibraryName)
	}
	return addr, nil
}

// Path returns the absolute on-disk path the OS loader mapped this
// module from.
func (l *Library) Path() (string, error) {
	if !l.Valid() {
		return "", errLibraryClosed
	}
	return modulePath(l.handle, LibraryName)
}
