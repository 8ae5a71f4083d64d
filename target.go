package goxattr

import (
	"os"
	"strconv"

	"github.com/iustin/goxattr/sysx"
)

type targetMode int

const (
	byPath targetMode = iota
	byLink
	byDescriptor
)

// Target is a resolved filesystem object an attribute operation applies
// to: a path (following a trailing symlink), a link path (operating on
// the symlink itself) or an open file descriptor. Exactly one mode is
// active. Targets are cheap values scoped to a single call; they hold no
// OS resources of their own and never close the descriptor they wrap.
type Target struct {
	mode targetMode
	path string
	fd   int
}

// Path targets the object at path, following a trailing symlink.
func Path(path string) Target {
	return Target{mode: byPath, path: path}
}

// Link targets the symlink at path itself.
func Link(path string) Target {
	return Target{mode: byLink, path: path}
}

// Descriptor targets an already-open file descriptor.
func Descriptor(fd int) Target {
	return Target{mode: byDescriptor, fd: fd}
}

// File targets the descriptor of an open file.
func File(f *os.File) Target {
	return Target{mode: byDescriptor, fd: int(f.Fd())}
}

// Resolve classifies a polymorphic item into a Target. Accepted shapes:
// a Target (returned as is), a string or []byte path, an *os.File or any
// value with an Fd() uintptr method, or a bare int/uintptr descriptor.
// nofollow selects the link mode for path items and is ignored for
// descriptors, which never resolve further. Anything else fails with
// ErrInvalidTarget before any syscall is made; existence of the object
// is deliberately left to the syscall itself.
func Resolve(item interface{}, nofollow bool) (Target, error) {
	pathTarget := Path
	if nofollow {
		pathTarget = Link
	}

	switch v := item.(type) {
	case Target:
		return v, nil
	case string:
		return pathTarget(v), nil
	case []byte:
		// The copy made by the conversion is owned by the Target and
		// outlives every syscall reading it.
		return pathTarget(string(v)), nil
	case *os.File:
		return Descriptor(int(v.Fd())), nil
	case interface{ Fd() uintptr }:
		return Descriptor(int(v.Fd())), nil
	case int:
		return Descriptor(v), nil
	case uintptr:
		return Descriptor(int(v)), nil
	default:
		return Target{}, ErrInvalidTarget
	}
}

func (t Target) String() string {
	if t.mode == byDescriptor {
		return "fd " + strconv.Itoa(t.fd)
	}
	return t.path
}

// The four families below switch on the active mode to pick the
// fd/path/link syscall variant. Pure dispatch, no further logic.

func (t Target) listxattr(dest []byte) (int, error) {
	switch t.mode {
	case byDescriptor:
		return sysx.Flistxattr(t.fd, dest)
	case byLink:
		return sysx.Llistxattr(t.path, dest)
	default:
		return sysx.Listxattr(t.path, dest)
	}
}

func (t Target) getxattr(attr string, dest []byte) (int, error) {
	switch t.mode {
	case byDescriptor:
		return sysx.Fgetxattr(t.fd, attr, dest)
	case byLink:
		return sysx.Lgetxattr(t.path, attr, dest)
	default:
		return sysx.Getxattr(t.path, attr, dest)
	}
}

func (t Target) setxattr(attr string, data []byte, flags int) error {
	switch t.mode {
	case byDescriptor:
		return sysx.Fsetxattr(t.fd, attr, data, flags)
	case byLink:
		return sysx.Lsetxattr(t.path, attr, data, flags)
	default:
		return sysx.Setxattr(t.path, attr, data, flags)
	}
}

func (t Target) removexattr(attr string) error {
	switch t.mode {
	case byDescriptor:
		return sysx.Fremovexattr(t.fd, attr)
	case byLink:
		return sysx.Lremovexattr(t.path, attr)
	default:
		return sysx.Removexattr(t.path, attr)
	}
}
