// Package goxattr manipulates extended attributes (xattrs) on files,
// directories and symlinks: small named byte-string values attached to
// filesystem objects outside their data stream, partitioned into the
// user, system, trusted and security namespaces. See xattr(7).
//
// Every operation takes a polymorphic item argument identifying the
// object to act on: a path (string or []byte), an open *os.File or
// anything with an Fd() uintptr method, a bare integer descriptor, or an
// already-resolved Target. Path items follow a trailing symlink unless
// the NoFollow option is given; descriptor items are used as is.
//
// All operations are plain blocking calls mapping to one or more
// syscalls on the calling goroutine. The library holds no state across
// calls and adds no locking; concurrent external mutation of the same
// object is tolerated, not prevented.
package goxattr

import (
	"errors"

	"github.com/iustin/goxattr/sysx"
)

// Well-known attribute namespaces. These are ordinary prefixes as far as
// this library is concerned; access control between them is enforced by
// the kernel.
const (
	NamespaceSecurity = "security"
	NamespaceSystem   = "system"
	NamespaceTrusted  = "trusted"
	NamespaceUser     = "user"
)

// Flags for Set, passed to the kernel bit-for-bit. Zero means create or
// replace.
const (
	// CREATE makes Set fail if the attribute already exists.
	CREATE = sysx.XATTR_CREATE

	// REPLACE makes Set fail if the attribute does not exist.
	REPLACE = sysx.XATTR_REPLACE
)

// Attr is a single attribute name/value pair as returned by GetAll.
type Attr struct {
	Name  string
	Value []byte
}

type options struct {
	nofollow  bool
	namespace string
	flags     int
}

// Option adjusts how an operation targets and names attributes.
type Option func(*options)

// NoFollow makes path-based operations act on a trailing symlink itself
// instead of the object it points to. It has no effect on descriptor
// items.
func NoFollow() Option {
	return func(o *options) { o.nofollow = true }
}

// InNamespace qualifies attribute names with the given namespace. For
// Get, Set and Remove the name argument is joined to namespace.name
// before hitting the kernel; for List and GetAll the namespace acts as a
// filter and the returned names have the prefix stripped.
func InNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// Create makes Set fail if the attribute already exists.
func Create() Option {
	return func(o *options) { o.flags = CREATE }
}

// Replace makes Set fail if the attribute does not exist yet.
func Replace() Option {
	return func(o *options) { o.flags = REPLACE }
}

// WithFlags passes raw platform setxattr flags through unchanged.
func WithFlags(flags int) Option {
	return func(o *options) { o.flags = flags }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// List returns the attribute names present on item, in the order the
// kernel reports them. With InNamespace, only names under that namespace
// are returned, with the prefix stripped.
func List(item interface{}, opts ...Option) ([]string, error) {
	o := collect(opts)
	t, err := Resolve(item, o.nofollow)
	if err != nil {
		return nil, err
	}

	buf, n, err := retrieve(nil, t.listxattr)
	if err != nil {
		return nil, &Error{Op: "listxattr", Target: t.String(), Err: err}
	}

	names := splitNames(buf[:n])
	if o.namespace == "" {
		return names, nil
	}

	var matched []string
	for _, name := range names {
		if stripped, ok := stripName(o.namespace, name); ok {
			matched = append(matched, stripped)
		}
	}
	return matched, nil
}

// Get returns the value of the named attribute. The result has exactly
// the length the kernel reports and may contain NUL bytes; it may be
// empty. With InNamespace the name is qualified first, so
// Get(p, "comment", InNamespace("user")) reads user.comment.
func Get(item interface{}, name string, opts ...Option) ([]byte, error) {
	o := collect(opts)
	t, err := Resolve(item, o.nofollow)
	if err != nil {
		return nil, err
	}
	name = mergeName(o.namespace, name)

	buf, n, err := retrieve(nil, func(dest []byte) (int, error) {
		return t.getxattr(name, dest)
	})
	if err != nil {
		return nil, &Error{Op: "getxattr", Target: t.String(), Attr: name, Err: err}
	}
	return buf[:n], nil
}

// GetAll returns every attribute of item with its value, in listing
// order. With InNamespace only matching attributes are fetched and the
// returned names have the prefix stripped.
//
// The listing and the per-attribute reads are separate syscalls, so the
// result is not an atomic snapshot: attributes added after the listing
// are not seen, and attributes removed after the listing are silently
// omitted rather than failing the whole call. Any other per-attribute
// error aborts.
func GetAll(item interface{}, opts ...Option) ([]Attr, error) {
	o := collect(opts)
	t, err := Resolve(item, o.nofollow)
	if err != nil {
		return nil, err
	}
	return getAll(t, o.namespace, t.listxattr, t.getxattr)
}

// getAll is the bulk path behind GetAll with the syscalls injected,
// which keeps the vanished-attribute tolerance testable without a
// cooperating filesystem.
func getAll(t Target, namespace string, list attrCall, get func(attr string, dest []byte) (int, error)) ([]Attr, error) {
	listBuf, n, err := retrieve(nil, list)
	if err != nil {
		return nil, &Error{Op: "listxattr", Target: t.String(), Err: err}
	}

	var attrs []Attr
	valBuf := make([]byte, defaultAttrBufferSize)

	for _, full := range splitNames(listBuf[:n]) {
		name, ok := stripName(namespace, full)
		if !ok {
			continue
		}

		full := full
		var vn int
		valBuf, vn, err = retrieve(valBuf, func(dest []byte) (int, error) {
			return get(full, dest)
		})
		if err != nil {
			if errors.Is(err, sysx.ENOATTR) {
				// Removed between the listing and this read.
				continue
			}
			return nil, &Error{Op: "getxattr", Target: t.String(), Attr: full, Err: err}
		}

		value := make([]byte, vn)
		copy(value, valBuf[:vn])
		attrs = append(attrs, Attr{Name: name, Value: value})
	}
	return attrs, nil
}

// Set writes the named attribute. By default the attribute is created if
// absent and replaced if present; Create and Replace tighten that. The
// value may be empty or contain NUL bytes. With InNamespace the name is
// qualified first.
func Set(item interface{}, name string, value []byte, opts ...Option) error {
	o := collect(opts)
	t, err := Resolve(item, o.nofollow)
	if err != nil {
		return err
	}
	name = mergeName(o.namespace, name)

	if err := t.setxattr(name, value, o.flags); err != nil {
		return &Error{Op: "setxattr", Target: t.String(), Attr: name, Err: err}
	}
	return nil
}

// Remove deletes the named attribute. Removing an attribute that does
// not exist fails; use IsAttrNotFound to detect that case. With
// InNamespace the name is qualified first.
func Remove(item interface{}, name string, opts ...Option) error {
	o := collect(opts)
	t, err := Resolve(item, o.nofollow)
	if err != nil {
		return err
	}
	name = mergeName(o.namespace, name)

	if err := t.removexattr(name); err != nil {
		return &Error{Op: "removexattr", Target: t.String(), Attr: name, Err: err}
	}
	return nil
}
