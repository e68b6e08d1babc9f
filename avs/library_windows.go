//go:build windows

package avs

import "golang.org/x/sys/windows"

// The loader appends ".dll" itself; the bare name keeps the standard
// search order in charge of which installation wins.
func libraryName() string {
	return "avisynth"
}

func openLibrary(name string) (uintptr, error) {
	handle, err := windows.LoadLibrary(name)
	return uintptr(handle), err
}

func symbolAddress(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func releaseLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func modulePath(handle uintptr, _ string) (string, error) {
	buf := make([]uint16, windows.MAX_LONG_PATH)
	n, err := windows.GetModuleFileName(windows.Handle(handle), &buf[0], uint32(len(buf)))
	if err != nil {
		return "", err
	}
	if n == 0 || int(n) >= len(buf) {
		return "", windows.ERROR_INSUFFICIENT_BUFFER
	}
	return windows.UTF16ToString(buf[:n]), nil
}
