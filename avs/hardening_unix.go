//go:build !windows

package avs

// HardenLoader is a no-op outside windows: the dlopen search order has
// no current-directory component to disable.
func HardenLoader() {}
