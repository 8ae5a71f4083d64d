package sysx

import "golang.org/x/sys/unix"

// Listxattr lists extended attribute names of the file at path, following
// a trailing symlink. A nil dest queries the required buffer size.
func Listxattr(path string, dest []byte) (int, error) {
	return unix.Listxattr(path, dest)
}

// Llistxattr is Listxattr operating on a symlink itself.
func Llistxattr(path string, dest []byte) (int, error) {
	return unix.Llistxattr(path, dest)
}

// Flistxattr is Listxattr operating on an open descriptor.
func Flistxattr(fd int, dest []byte) (int, error) {
	return unix.Flistxattr(fd, dest)
}

// Getxattr reads the value of attr from the file at path, following a
// trailing symlink. A nil dest queries the value size.
func Getxattr(path, attr string, dest []byte) (int, error) {
	return unix.Getxattr(path, attr, dest)
}

// Lgetxattr is Getxattr operating on a symlink itself.
func Lgetxattr(path, attr string, dest []byte) (int, error) {
	return unix.Lgetxattr(path, attr, dest)
}

// Fgetxattr is Getxattr operating on an open descriptor.
func Fgetxattr(fd int, attr string, dest []byte) (int, error) {
	return unix.Fgetxattr(fd, attr, dest)
}

// Setxattr sets attr on the file at path, following a trailing symlink.
func Setxattr(path, attr string, data []byte, flags int) error {
	return unix.Setxattr(path, attr, data, flags)
}

// Lsetxattr is Setxattr operating on a symlink itself.
func Lsetxattr(path, attr string, data []byte, flags int) error {
	return unix.Lsetxattr(path, attr, data, flags)
}

// Fsetxattr is Setxattr operating on an open descriptor.
func Fsetxattr(fd int, attr string, data []byte, flags int) error {
	return unix.Fsetxattr(fd, attr, data, flags)
}

// Removexattr removes attr from the file at path, following a trailing
// symlink.
func Removexattr(path, attr string) error {
	return unix.Removexattr(path, attr)
}

// Lremovexattr is Removexattr operating on a symlink itself.
func Lremovexattr(path, attr string) error {
	return unix.Lremovexattr(path, attr)
}

// Fremovexattr is Removexattr operating on an open descriptor.
func Fremovexattr(fd int, attr string) error {
	return unix.Fremovexattr(fd, attr)
}
