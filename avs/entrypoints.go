package avs

import "github.com/ebitengine/purego"

// EntryPoints holds the five entry points this tool needs from the
// engine, registered as typed Go funcs. The table is only ever handed
// out fully populated; partial resolution aborts instead.
type EntryPoints struct {
	// CreateScriptEnvironment builds a transient script environment for
	// the requested interface version. A zero handle means the engine
	// refused the request.
	CreateScriptEnvironment func(version int32) uintptr

	// DeleteScriptEnvironment tears down an environment created by
	// CreateScriptEnvironment.
	DeleteScriptEnvironment func(env uintptr)

	// FunctionExists reports whether the named script function is
	// registered inside the environment. Non-zero means present.
	FunctionExists func(env uintptr, name string) int32

	// Invoke calls the named script function with the given argument
	// array and no named-argument table.
	Invoke func(env uintptr, name string, args Value, argNames uintptr) Value

	// ReleaseValue releases a value returned by Invoke.
	ReleaseValue func(v Value)
}

// symbolSource is the narrow surface the resolver needs from a loaded
// library.
type symbolSource interface {
	Symbol(name string) (uintptr, error)
}

// requiredSymbols lists the entry points in resolution order, each with
// the slot it binds into. Every subsequent step needs all five, so the
// first miss aborts the whole resolution. The plain slots register
// through purego directly; invoke and release-value move the 16-byte
// engine value by value, which each platform binds its own way (see
// entrypoints_darwin.go, entrypoints_unix.go, entrypoints_windows.go).
var requiredSymbols = []struct {
	name string
	bind func(*EntryPoints, uintptr)
}{
	{"avs_create_script_environment", func(ep *EntryPoints, addr uintptr) {
		purego.RegisterFunc(&ep.CreateScriptEnvironment, addr)
	}},
	{"avs_delete_script_environment", func(ep *EntryPoints, addr uintptr) {
		purego.RegisterFunc(&ep.DeleteScriptEnvironment, addr)
	}},
	{"avs_invoke", bindInvoke},
	{"avs_function_exists", func(ep *EntryPoints, addr uintptr) {
		purego.RegisterFunc(&ep.FunctionExists, addr)
	}},
	{"avs_release_value", bindReleaseValue},
}

// ResolveEntryPoints resolves the five required entry points in order
// and registers them as callable funcs. On the first symbol that fails
// to resolve it returns a *SymbolError naming that symbol; none of the
// remaining symbols are probed.
func ResolveEntryPoints(src symbolSource) (*EntryPoints, error) {
	addrs, err := resolveSymbols(src)
	if err != nil {
		return nil, err
	}
	ep := &EntryPoints{}
	for i, sym := range requiredSymbols {
		sym.bind(ep, addrs[i])
	}
	return ep, nil
}

func resolveSymbols(src symbolSource) ([]uintptr, error) {
	addrs := make([]uintptr, 0, len(requiredSymbols))
	for _, sym := range requiredSymbols {
		addr, err := src.Symbol(sym.name)
		if err != nil || addr == 0 {
			return nil, &SymbolError{Name: sym.name, Sys: sysErrorFrom(err)}
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}
