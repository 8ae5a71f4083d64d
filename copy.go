package goxattr

import "github.com/pkg/errors"

// CopyAll replicates every extended attribute of src onto dst. Options
// apply to both ends: NoFollow targets symlinks themselves, InNamespace
// restricts the copy to one namespace (the prefix is stripped by the
// read and re-applied by the write, so the result lands in the same
// namespace).
//
// Attributes already applied are not rolled back if a later write
// fails.
func CopyAll(dst, src interface{}, opts ...Option) error {
	attrs, err := GetAll(src, opts...)
	if err != nil {
		return errors.Wrap(err, "reading source attributes")
	}

	for _, attr := range attrs {
		if err := Set(dst, attr.Name, attr.Value, opts...); err != nil {
			return errors.Wrapf(err, "copying %q", attr.Name)
		}
	}
	return nil
}
