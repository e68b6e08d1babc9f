//go:build windows

package avs

import (
	"errors"

	"golang.org/x/sys/windows"
)

// sysErrorFrom extracts the Win32 error code and its FormatMessage text
// from a loader failure.
func sysErrorFrom(err error) *SysError {
	if err == nil {
		return &SysError{}
	}
	var errno windows.Errno
	if errors.As(err, &errno) {
		// #nosec G115 -- Win32 error codes are 32-bit values.
		return &SysError{Code: uint32(errno), HasCode: true, Text: errno.Error()}
	}
	return &SysError{Text: err.Error()}
}
