//go:build linux || darwin

// Package sysx provides the raw extended-attribute syscall table for the
// platforms the library supports. Each of the four operation families
// (list, get, set, remove) comes in three variants: path-based (follows a
// trailing symlink), link-based (operates on the symlink itself) and
// descriptor-based. Callers never see errno directly; every function
// returns the unix.Errno as an error value.
package sysx

import "golang.org/x/sys/unix"

// Setxattr flags, passed through to the kernel bit-for-bit.
const (
	// XATTR_CREATE fails with EEXIST if the attribute already exists.
	XATTR_CREATE = unix.XATTR_CREATE

	// XATTR_REPLACE fails with ENOATTR if the attribute does not exist.
	XATTR_REPLACE = unix.XATTR_REPLACE
)
