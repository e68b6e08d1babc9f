//go:build darwin

package avs

import "github.com/ebitengine/purego"

// purego supports struct arguments and returns on darwin, so the
// engine value crosses RegisterFunc directly.

func bindInvoke(ep *EntryPoints, addr uintptr) {
	purego.RegisterFunc(&ep.Invoke, addr)
}

func bindReleaseValue(ep *EntryPoints, addr uintptr) {
	purego.RegisterFunc(&ep.ReleaseValue, addr)
}
