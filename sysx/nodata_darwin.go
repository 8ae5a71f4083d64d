package sysx

import "golang.org/x/sys/unix"

// ENOATTR is the "no such attribute" error.
const ENOATTR = unix.ENOATTR
