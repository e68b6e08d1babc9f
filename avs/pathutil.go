package avs

const extendedLengthPrefix = `\\?\`

// stripExtendedLengthPrefix removes the extended-length path prefix,
// but only when the remainder is a plain drive-letter path. UNC-style
// extended paths keep the prefix; stripping it there would produce a
// path the rest of the system cannot open.
func stripExtendedLengthPrefix(path string) string {
	if len(path) < len(extendedLengthPrefix)+2 {
		return path
	}
	if path[:len(extendedLengthPrefix)] != extendedLengthPrefix {
		return path
	}
	rest := path[len(extendedLengthPrefix):]
	if isDriveLetter(rest[0]) && rest[1] == ':' {
		return rest
	}
	return path
}

func isDriveLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
