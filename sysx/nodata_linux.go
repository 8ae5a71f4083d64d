package sysx

import "golang.org/x/sys/unix"

// ENOATTR is the "no such attribute" error. Linux has no separate
// ENOATTR; the kernel reports ENODATA.
const ENOATTR = unix.ENODATA
