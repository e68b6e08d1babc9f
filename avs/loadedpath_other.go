//go:build !windows && !linux && !darwin

package avs

import "fmt"

func modulePath(handle uintptr, name string) (string, error) {
	if handle == 0 {
		return "", errLibraryClosed
	}
	return "", fmt.Errorf("loaded-module path lookup is not supported on this platform")
}
