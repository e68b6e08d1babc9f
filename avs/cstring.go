package avs

import "unsafe"

// goToCString returns a null-terminated copy of s together with the
// address of its first byte. The caller must keep the returned slice
// alive for as long as the callee may read through the pointer.
func goToCString(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}
