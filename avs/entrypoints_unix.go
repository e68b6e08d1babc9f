//go:build !windows && !darwin

package avs

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// The System V and AAPCS64 conventions classify the 16-byte engine
// value as two integer words and move it through a register pair in
// both directions. purego's RegisterFunc refuses struct crossings off
// darwin, so these two slots call through SyscallN with the value
// split into its words instead.

func bindInvoke(ep *EntryPoints, addr uintptr) {
	ep.Invoke = func(env uintptr, name string, args Value, argNames uintptr) Value {
		nameBytes, namePtr := goToCString(name)
		lo, hi := args.words()
		r1, r2, _ := purego.SyscallN(addr, env, namePtr, uintptr(lo), uintptr(hi), argNames)
		runtime.KeepAlive(nameBytes)
		return valueFromWords(uint64(r1), uint64(r2))
	}
}

func bindReleaseValue(ep *EntryPoints, addr uintptr) {
	ep.ReleaseValue = func(v Value) {
		lo, hi := v.words()
		_, _, _ = purego.SyscallN(addr, uintptr(lo), uintptr(hi))
	}
}
