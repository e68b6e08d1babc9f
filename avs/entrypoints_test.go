package avs

import (
	"errors"
	"fmt"
	"testing"
)

// fakeSymbolSource records the order symbols are requested in and fails
// the names listed in missing.
type fakeSymbolSource struct {
	requested []string
	missing   map[string]bool
}

func (f *fakeSymbolSource) Symbol(name string) (uintptr, error) {
	f.requested = append(f.requested, name)
	if f.missing[name] {
		return 0, fmt.Errorf("symbol %q not found", name)
	}
	// Arbitrary non-zero addresses; resolution never calls through.
	return uintptr(0x1000 + len(f.requested)), nil
}

func TestResolveSymbolsOrder(t *testing.T) {
	src := &fakeSymbolSource{}
	addrs, err := resolveSymbols(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(addrs) != 5 {
		t.Fatalf("expected 5 addresses, got %d", len(addrs))
	}

	want := []string{
		"avs_create_script_environment",
		"avs_delete_script_environment",
		"avs_invoke",
		"avs_function_exists",
		"avs_release_value",
	}
	if len(src.requested) != len(want) {
		t.Fatalf("expected %d lookups, got %d", len(want), len(src.requested))
	}
	for i, name := range want {
		if src.requested[i] != name {
			t.Errorf("lookup %d = %q, want %q", i, src.requested[i], name)
		}
	}
}

func TestResolveSymbolsFailFast(t *testing.T) {
	// The first miss aborts resolution; none of the remaining symbols
	// may be probed.
	src := &fakeSymbolSource{missing: map[string]bool{"avs_invoke": true}}

	_, err := resolveSymbols(src)
	if err == nil {
		t.Fatal("expected error for missing symbol")
	}

	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("expected *SymbolError, got %T", err)
	}
	if symErr.Name != "avs_invoke" {
		t.Errorf("expected failing symbol avs_invoke, got %q", symErr.Name)
	}

	wantLookups := []string{
		"avs_create_script_environment",
		"avs_delete_script_environment",
		"avs_invoke",
	}
	if len(src.requested) != len(wantLookups) {
		t.Fatalf("expected resolution to stop after %d lookups, got %d: %v",
			len(wantLookups), len(src.requested), src.requested)
	}
}

func TestResolveSymbolsFirstMissing(t *testing.T) {
	src := &fakeSymbolSource{missing: map[string]bool{"avs_create_script_environment": true}}

	_, err := resolveSymbols(src)
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("expected *SymbolError, got %v", err)
	}
	if symErr.Name != "avs_create_script_environment" {
		t.Errorf("expected first symbol to be reported, got %q", symErr.Name)
	}
	if len(src.requested) != 1 {
		t.Errorf("expected exactly one lookup, got %d", len(src.requested))
	}
}

func TestResolveSymbolsZeroAddressIsMissing(t *testing.T) {
	// A source that returns a null address without an error still
	// counts as a miss.
	src := zeroAddressSource{}
	_, err := resolveSymbols(src)
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("expected *SymbolError, got %v", err)
	}
	if symErr.Name != "avs_create_script_environment" {
		t.Errorf("unexpected failing symbol %q", symErr.Name)
	}
}

func TestResolveEntryPointsBindsAllSlots(t *testing.T) {
	// Binding must succeed on the platform the tests run on with
	// nothing but resolved addresses; a registration scheme the
	// platform cannot support would panic right here, before any call
	// through an entry point. No slot is invoked.
	src := &fakeSymbolSource{}

	ep, err := ResolveEntryPoints(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ep.CreateScriptEnvironment == nil {
		t.Error("CreateScriptEnvironment slot not bound")
	}
	if ep.DeleteScriptEnvironment == nil {
		t.Error("DeleteScriptEnvironment slot not bound")
	}
	if ep.Invoke == nil {
		t.Error("Invoke slot not bound")
	}
	if ep.FunctionExists == nil {
		t.Error("FunctionExists slot not bound")
	}
	if ep.ReleaseValue == nil {
		t.Error("ReleaseValue slot not bound")
	}
}

type zeroAddressSource struct{}

func (zeroAddressSource) Symbol(string) (uintptr, error) { return 0, nil }

func TestSymbolErrorMessageNamesSymbol(t *testing.T) {
	err := &SymbolError{Name: "avs_invoke", Sys: &SysError{Text: "not found"}}
	if got := err.Error(); got != `function "avs_invoke" could not be resolved: not found` {
		t.Errorf("unexpected message: %s", got)
	}
}
