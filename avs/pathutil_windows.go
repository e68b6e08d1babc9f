//go:build windows

package avs

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// canonicalPathCap bounds the final-path buffer; a result that would
// not fit is a failure, never a silent truncation.
const canonicalPathCap = 4096

const fileNameNormalized = 0x0

var (
	modkernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procGetFinalPathNameByHandleW = modkernel32.NewProc("GetFinalPathNameByHandleW")
)

// canonicalPath maps a possibly-aliased path to its junction-resolved
// final path. The API is looked up by name at runtime: platform
// versions that predate it simply fail the lookup and the caller keeps
// the raw path.
func canonicalPath(path string) (string, error) {
	if err := procGetFinalPathNameByHandleW.Find(); err != nil {
		return "", err
	}

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", err
	}
	handle, err := windows.CreateFile(
		pathPtr,
		windows.GENERIC_READ,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = windows.CloseHandle(handle)
	}()

	buf := make([]uint16, canonicalPathCap)
	n, _, callErr := procGetFinalPathNameByHandleW.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		fileNameNormalized,
	)
	if n == 0 {
		return "", callErr
	}
	if int(n) >= len(buf) {
		return "", fmt.Errorf("canonical path exceeds %d characters", canonicalPathCap)
	}
	return stripExtendedLengthPrefix(windows.UTF16ToString(buf[:n])), nil
}
