package goxattr

import "strings"

// mergeName joins an optional namespace with a bare attribute name into
// the fully-qualified namespace.name form the kernel expects. An empty
// namespace returns name untouched. A name that already contains dots is
// prefixed as is: mergeName("user", "a.b") is "user.a.b".
func mergeName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// stripName matches fullname against an optional namespace and returns
// the name with the prefix removed. An empty namespace matches every
// name unmodified. Otherwise fullname matches only if it is strictly
// longer than namespace plus the separator and starts with exactly
// namespace plus ".".
func stripName(namespace, fullname string) (string, bool) {
	if namespace == "" {
		return fullname, true
	}
	prefix := namespace + "."
	if len(fullname) > len(prefix) && strings.HasPrefix(fullname, prefix) {
		return fullname[len(prefix):], true
	}
	return "", false
}

// splitNames splits the kernel's NUL-separated, NUL-terminated name blob
// into individual names, dropping empty entries.
func splitNames(blob []byte) []string {
	var names []string
	off := 0
	for i, b := range blob {
		if b == 0 {
			if i > off {
				names = append(names, string(blob[off:i]))
			}
			off = i + 1
		}
	}
	// A well-formed blob ends in NUL; tolerate a missing terminator.
	if off < len(blob) {
		names = append(names, string(blob[off:]))
	}
	return names
}
