//go:build !windows

package avs

import "path/filepath"

// canonicalPath resolves symlinks to the real on-disk path. Failures
// are soft; the caller falls back to the path it already has.
func canonicalPath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
