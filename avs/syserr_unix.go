//go:build !windows

package avs

// The unix loader reports failures through dlerror text only; there is
// no numeric code to carry.
func sysErrorFrom(err error) *SysError {
	if err == nil {
		return &SysError{}
	}
	return &SysError{Text: err.Error()}
}
