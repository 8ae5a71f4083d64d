package sysx

import "golang.org/x/sys/unix"

// Darwin multiplexes all twelve calls over getxattr/setxattr-style entry
// points taking an options word (XATTR_NOFOLLOW selects the link variant);
// the unix package hides that behind the Linux-shaped wrappers used here.
// Note that on darwin a size query requires a NULL buffer pointer, not
// merely a zero length, which is why callers probe with a nil slice.

func Listxattr(path string, dest []byte) (int, error) {
	return unix.Listxattr(path, dest)
}

func Llistxattr(path string, dest []byte) (int, error) {
	return unix.Llistxattr(path, dest)
}

func Flistxattr(fd int, dest []byte) (int, error) {
	return unix.Flistxattr(fd, dest)
}

func Getxattr(path, attr string, dest []byte) (int, error) {
	return unix.Getxattr(path, attr, dest)
}

func Lgetxattr(path, attr string, dest []byte) (int, error) {
	return unix.Lgetxattr(path, attr, dest)
}

func Fgetxattr(fd int, attr string, dest []byte) (int, error) {
	return unix.Fgetxattr(fd, attr, dest)
}

func Setxattr(path, attr string, data []byte, flags int) error {
	return unix.Setxattr(path, attr, data, flags)
}

func Lsetxattr(path, attr string, data []byte, flags int) error {
	return unix.Lsetxattr(path, attr, data, flags)
}

func Fsetxattr(fd int, attr string, data []byte, flags int) error {
	return unix.Fsetxattr(fd, attr, data, flags)
}

func Removexattr(path, attr string) error {
	return unix.Removexattr(path, attr)
}

func Lremovexattr(path, attr string) error {
	return unix.Lremovexattr(path, attr)
}

func Fremovexattr(fd int, attr string) error {
	return unix.Fremovexattr(fd, attr)
}
