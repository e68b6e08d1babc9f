package avs

import "fmt"

// SysError captures the platform error detail behind a failed loader
// call: a numeric code where the platform has one, and the OS's textual
// description of it where the message-formatting facility yields one.
// Either part may be absent.
type SysError struct {
	Code    uint32
	HasCode bool
	Text    string
}

func (e *SysError) Error() string {
	if e == nil {
		return "unknown system error"
	}
	if e.HasCode && e.Text != "" {
		return fmt.Sprintf("%s (0x%08X)", e.Text, e.Code)
	}
	if e.HasCode {
		return fmt.Sprintf("system error 0x%08X", e.Code)
	}
	if e.Text != "" {
		return e.Text
	}
	return "unknown system error"
}

// LoadError reports that the engine library could not be loaded.
type LoadError struct {
	Name string
	Sys  *SysError
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Name, e.Sys)
}

func (e *LoadError) Unwrap() error {
	if e.Sys == nil {
		return nil
	}
	return e.Sys
}

// SymbolError reports the first required entry point that failed to
// resolve. Resolution stops at that symbol; the remaining names are
// never probed.
type SymbolError struct {
	Name string
	Sys  *SysError
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("function %q could not be resolved: %v", e.Name, e.Sys)
}

func (e *SymbolError) Unwrap() error {
	if e.Sys == nil {
		return nil
	}
	return e.Sys
}
