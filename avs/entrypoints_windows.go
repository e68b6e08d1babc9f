//go:build windows

package avs

import (
	"runtime"
	"syscall"
	"unsafe"
)

// The x64 convention passes composites larger than eight bytes by
// reference and returns them through a hidden pointer in the first
// argument slot. arm64 moves the 16-byte engine value through a
// register pair instead, the same split the unix binding uses.

func bindInvoke(ep *EntryPoints, addr uintptr) {
	ep.Invoke = func(env uintptr, name string, args Value, argNames uintptr) Value {
		nameBytes, namePtr := goToCString(name)
		var ret Value
		if runtime.GOARCH == "arm64" {
			lo, hi := args.words()
			r1, r2, _ := syscall.SyscallN(addr, env, namePtr, uintptr(lo), uintptr(hi), argNames)
			ret = valueFromWords(uint64(r1), uint64(r2))
		} else {
			arg := args
			_, _, _ = syscall.SyscallN(addr, uintptr(unsafe.Pointer(&ret)), env, namePtr, uintptr(unsafe.Pointer(&arg)), argNames)
		}
		runtime.KeepAlive(nameBytes)
		return ret
	}
}

func bindReleaseValue(ep *EntryPoints, addr uintptr) {
	ep.ReleaseValue = func(v Value) {
		if runtime.GOARCH == "arm64" {
			lo, hi := v.words()
			_, _, _ = syscall.SyscallN(addr, uintptr(lo), uintptr(hi))
			return
		}
		arg := v
		_, _, _ = syscall.SyscallN(addr, uintptr(unsafe.Pointer(&arg)))
	}
}
