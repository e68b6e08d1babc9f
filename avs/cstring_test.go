package avs

import (
	"testing"
	"unsafe"
)

func TestGoToCString(t *testing.T) {
	b, ptr := goToCString("VersionNumber")

	if len(b) != len("VersionNumber")+1 {
		t.Fatalf("expected %d bytes, got %d", len("VersionNumber")+1, len(b))
	}
	if b[len(b)-1] != 0 {
		t.Error("missing null terminator")
	}
	if string(b[:len(b)-1]) != "VersionNumber" {
		t.Errorf("unexpected content %q", b[:len(b)-1])
	}
	if ptr != uintptr(unsafe.Pointer(&b[0])) {
		t.Error("pointer does not address the first byte of the slice")
	}
}

func TestGoToCStringEmpty(t *testing.T) {
	b, ptr := goToCString("")

	if len(b) != 1 || b[0] != 0 {
		t.Fatalf("expected a lone null terminator, got %v", b)
	}
	if ptr == 0 {
		t.Error("expected a valid pointer for the empty string")
	}
}
