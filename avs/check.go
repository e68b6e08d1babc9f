package avs

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Status enumerates the pipeline outcomes. The values double as the
// process exit codes consumed by the invoking tool.
type Status int

const (
	// StatusAvailable means the engine loaded, all entry points
	// resolved, and a version at or above MinimumVersion was reported.
	StatusAvailable Status = 0
	// StatusLoadFailed means the engine library could not be loaded.
	StatusLoadFailed Status = 1
	// StatusPathUnknown means the library loaded but its on-disk path
	// could not be determined.
	StatusPathUnknown Status = 2
	// StatusSymbolMissing means a required entry point failed to
	// resolve.
	StatusSymbolMissing Status = 3
	// StatusVersionUnknown means the version could not be determined or
	// is below the accepted minimum.
	StatusVersionUnknown Status = 4
)

// library is the surface Run needs from an opened module.
type library interface {
	symbolSource
	Path() (string, error)
	Close() error
}

// Checker probes the local machine for a usable AviSynth installation.
// One Checker runs the pipeline once; diagnostics go to its output
// writer as they are produced.
type Checker struct {
	out       io.Writer
	open      func() (library, error)
	resolve   func(symbolSource) (*EntryPoints, error)
	probe     func(*EntryPoints) float64
	canonical func(string) (string, error)
}

// Option customizes a Checker.
type Option func(*Checker)

// WithOutput directs diagnostic output to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.out = w
	}
}

func withOpener(open func() (library, error)) Option {
	return func(c *Checker) {
		c.open = open
	}
}

func withResolver(resolve func(symbolSource) (*EntryPoints, error)) Option {
	return func(c *Checker) {
		c.resolve = resolve
	}
}

func withProber(probe func(*EntryPoints) float64) Option {
	return func(c *Checker) {
		c.probe = probe
	}
}

func withCanonicalizer(canonical func(string) (string, error)) Option {
	return func(c *Checker) {
		c.canonical = canonical
	}
}

// New builds a Checker wired to the real loader.
func New(opts ...Option) *Checker {
	c := &Checker{
		out: os.Stderr,
		open: func() (library, error) {
			lib, err := Open()
			if err != nil {
				return nil, err
			}
			return lib, nil
		},
		resolve:   ResolveEntryPoints,
		probe:     probeVersion,
		canonical: canonicalPath,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Run executes the probing pipeline strictly top to bottom: load the
// library, determine its path, resolve the entry points, probe the
// version. The first failure is terminal for the run; there is no
// retry anywhere.
func (c *Checker) Run() Status {
	dumpSearchPath(c.out)

	lib, err := c.open()
	if err != nil {
		c.reportError("Avisynth DLL could not be loaded!", sysDetail(err))
		return StatusLoadFailed
	}
	defer func() {
		_ = lib.Close()
	}()

	path, err := lib.Path()
	if err != nil {
		c.reportError("Failed to determine Avisynth DLL path!", sysDetail(err))
		return StatusPathUnknown
	}
	// Canonicalization is informational only; on failure the raw path
	// is displayed instead.
	if resolved, err := c.canonical(path); err == nil {
		path = resolved
	}
	fmt.Fprintf(c.out, "Avisynth_DLLPath=%s\n", path)

	ep, err := c.resolve(lib)
	if err != nil {
		var symErr *SymbolError
		if errors.As(err, &symErr) {
			c.reportError(fmt.Sprintf("Function '%s' could not be resolved!", symErr.Name), symErr.Sys)
		} else {
			c.reportError("Avisynth entry points could not be resolved!", sysDetail(err))
		}
		return StatusSymbolMissing
	}

	version := c.probe(ep)
	if !versionAccepted(version) {
		// The engine gave no structured failure reason here, so no
		// further detail is reported.
		c.reportError("Failed to determine Avisynth version!", nil)
		return StatusVersionUnknown
	}

	fmt.Fprintf(c.out, "Avisynth_Version=%.2f\n\n", version)
	return StatusAvailable
}

// reportError prints the one-line summary, with the platform error code
// when one is available, followed by the OS's description of that code
// when the message facility yielded one.
func (c *Checker) reportError(description string, sys *SysError) {
	if sys != nil && sys.HasCode {
		fmt.Fprintf(c.out, "\nERROR: %s [0x%08X]\n", description, sys.Code)
	} else {
		fmt.Fprintf(c.out, "\nERROR: %s\n", description)
	}
	if sys != nil && sys.Text != "" {
		fmt.Fprintf(c.out, "%s\n", sys.Text)
	}
	fmt.Fprintln(c.out)
}

func sysDetail(err error) *SysError {
	var sys *SysError
	if errors.As(err, &sys) {
		return sys
	}
	if err != nil {
		return &SysError{Text: err.Error()}
	}
	return nil
}
