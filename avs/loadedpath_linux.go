//go:build linux

package avs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// modulePath recovers the on-disk path of an already-loaded module from
// the process map table. The loader records the file it mapped, so this
// reflects the same search-order decision dlopen made; the handle itself
// only gates the call.
func modulePath(handle uintptr, name string) (string, error) {
	if handle == 0 {
		return "", errLibraryClosed
	}
	return scanMapsForLibrary("/proc/self/maps", name)
}

func scanMapsForLibrary(mapsPath, name string) (string, error) {
	f, err := os.Open(mapsPath)
	if err != nil {
		return "", fmt.Errorf("failed to read process map table: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	// Match on the base name so a versioned file name such as
	// libavisynth.so.7 still resolves.
	want := strings.TrimSuffix(name, ".so")
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 6 {
			continue
		}
		mapped := fields[len(fields)-1]
		if !strings.HasPrefix(mapped, "/") {
			continue
		}
		base := filepath.Base(mapped)
		if base == name || strings.HasPrefix(base, want+".so") {
			return mapped, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to scan process map table: %w", err)
	}
	return "", fmt.Errorf("%s not present in process map table", name)
}
