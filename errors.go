package goxattr

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/iustin/goxattr/sysx"
)

// ErrInvalidTarget is returned when an item passed to an operation is
// neither path-like nor descriptor-like. It is detected before any
// syscall is issued.
var ErrInvalidTarget = errors.New("item must be a path or a file descriptor")

// Error records a failed attribute operation. Err holds the originating
// unix.Errno unmodified, so callers can match specific conditions with
// errors.Is or the IsAttrNotFound/IsNotSupported helpers.
type Error struct {
	Op     string
	Target string
	Attr   string
	Err    error
}

func (e *Error) Error() string {
	if e.Attr == "" {
		return e.Op + " " + e.Target + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Target + " " + e.Attr + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// IsAttrNotFound reports whether err means the named attribute does not
// exist on the target (ENODATA on Linux, ENOATTR on Darwin).
func IsAttrNotFound(err error) bool {
	return errors.Is(err, sysx.ENOATTR)
}

// IsNotSupported reports whether err means the filesystem holding the
// target does not support extended attributes, or not in the requested
// namespace.
func IsNotSupported(err error) bool {
	return errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP)
}
