package goxattr

import (
	"errors"

	"golang.org/x/sys/unix"
)

// defaultAttrBufferSize is the initial estimate for the reusable value
// buffer in bulk enumeration. Small enough not to waste memory on files
// with few attributes, large enough that most values fit on the first
// syscall. Tunable, not part of the API contract.
const defaultAttrBufferSize = 256

// attrCall performs one query-or-fill syscall against a fixed target and
// attribute: with a nil dest it returns the size currently required,
// otherwise it fills dest and returns the number of bytes written.
type attrCall func(dest []byte) (int, error)

// retrieve reads variable-sized attribute data through call, sizing buf
// as needed, and returns the (possibly regrown) buffer along with the
// number of valid bytes in it.
//
// An empty buf triggers a size probe first; a zero probe result
// short-circuits with no allocation. A full buffer is then filled, and
// if the kernel reports ERANGE the data grew between sizing and filling,
// so the current size is probed again and the fill retried. Any other
// error aborts.
//
// The buffer is owned by the caller before and after: retrieve never
// shrinks or releases it, only grows it, which lets bulk enumeration
// amortize one buffer across many reads.
func retrieve(buf []byte, call attrCall) ([]byte, int, error) {
	if len(buf) == 0 {
		n, err := call(nil)
		if err != nil {
			return buf, 0, err
		}
		if n == 0 {
			return buf, 0, nil
		}
		buf = make([]byte, n)
	}

	for {
		n, err := call(buf)
		if err == nil {
			return buf, n, nil
		}
		if !errors.Is(err, unix.ERANGE) {
			return buf, 0, err
		}

		n, err = call(nil)
		if err != nil {
			return buf, 0, err
		}
		if n > len(buf) {
			buf = make([]byte, n)
		}
	}
}
