// Command avscheck probes the local machine for a usable AviSynth
// installation and reports the outcome through its exit code. It is
// meant to run as a preflight step for tools that optionally integrate
// with AviSynth; all human-readable output goes to stderr, the exit
// code is the machine-readable result.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/avisynth-tools/avscheck/avs"
)

// BuildDate is stamped at build time via
// -ldflags "-X main.BuildDate=...".
var BuildDate = "unknown"

// fatalExitCode is the sentinel for the crash path, distinct from every
// normal outcome code.
const fatalExitCode = 666

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Memory faults become panics so the boundary below catches them
	// alongside ordinary ones. The boundary never resumes; it prints
	// the fixed fatal message and the process dies with the sentinel.
	debug.SetPanicOnFault(true)
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprint(os.Stderr, "\nFATAL ERROR: Unhandled exception encountered!\n\n")
			code = fatalExitCode
		}
	}()

	avs.HardenLoader()

	arch := archName()
	fmt.Fprintf(os.Stderr, "Avisynth Checker %s [%s]\n", arch, BuildDate)
	fmt.Fprintf(os.Stderr, "Copyright (c) 2014-2015 LoRd_MuldeR <mulder2@gmx.de>. Some rights reserved.\n\n")
	fmt.Fprintf(os.Stderr, "This program is free software: you can redistribute it and/or modify\n")
	fmt.Fprintf(os.Stderr, "it under the terms of the GNU General Public License <http://www.gnu.org/>.\n")
	fmt.Fprintf(os.Stderr, "Note that this program is distributed with ABSOLUTELY NO WARRANTY.\n\n")

	status := avs.New().Run()
	if status == avs.StatusAvailable {
		fmt.Fprintf(os.Stderr, "Avisynth v2.5+ (%s) is available on this machine :-)\n\n", arch)
	} else {
		fmt.Fprintf(os.Stderr, "Avisynth v2.5+ (%s) is *NOT* available on this machine :-(\n\n", arch)
	}
	return int(status)
}

func archName() string {
	if strconv.IntSize == 64 {
		return "x64"
	}
	return "x86"
}
