package goxattr

import (
	"reflect"
	"testing"
)

func TestMergeName(t *testing.T) {
	for _, tc := range []struct {
		ns, name, want string
	}{
		{"", "user.comment", "user.comment"},
		{"user", "comment", "user.comment"},
		{"security", "selinux", "security.selinux"},
		// Already-dotted names are prefixed as is.
		{"user", "mime.type", "user.mime.type"},
		{"", "", ""},
	} {
		if got := mergeName(tc.ns, tc.name); got != tc.want {
			t.Errorf("mergeName(%q, %q) = %q, want %q", tc.ns, tc.name, got, tc.want)
		}
	}
}

func TestStripName(t *testing.T) {
	for _, tc := range []struct {
		ns, fullname string
		want         string
		match        bool
	}{
		{"", "user.comment", "user.comment", true},
		{"user", "user.comment", "comment", true},
		{"user", "user.a.b", "a.b", true},
		{"user", "security.selinux", "", false},
		// Must be strictly longer than the prefix.
		{"user", "user.", "", false},
		{"user", "user", "", false},
		// Prefix match must fall on the separator.
		{"user", "username.x", "", false},
		{"use", "user.comment", "", false},
	} {
		got, match := stripName(tc.ns, tc.fullname)
		if got != tc.want || match != tc.match {
			t.Errorf("stripName(%q, %q) = %q, %v, want %q, %v",
				tc.ns, tc.fullname, got, match, tc.want, tc.match)
		}
	}
}

func TestSplitNames(t *testing.T) {
	for _, tc := range []struct {
		blob []byte
		want []string
	}{
		{nil, nil},
		{[]byte{}, nil},
		{[]byte("user.a\x00"), []string{"user.a"}},
		{[]byte("user.a\x00user.b\x00"), []string{"user.a", "user.b"}},
		// Tolerate a missing trailing terminator.
		{[]byte("user.a\x00user.b"), []string{"user.a", "user.b"}},
		// Empty entries are dropped.
		{[]byte("\x00user.a\x00\x00"), []string{"user.a"}},
	} {
		if got := splitNames(tc.blob); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitNames(%q) = %v, want %v", tc.blob, got, tc.want)
		}
	}
}
