//go:build windows

package avs

import "golang.org/x/sys/windows"

// HardenLoader removes the current directory from the DLL search order
// and suppresses the loader's error dialog boxes, process-wide. It is
// installed once before any load attempt and never torn down; the
// process exits first.
func HardenLoader() {
	_ = windows.SetDllDirectory("")
	windows.SetErrorMode(windows.SEM_FAILCRITICALERRORS | windows.SEM_NOOPENFILEERRORBOX)
}
