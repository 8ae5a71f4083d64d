package goxattr

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeFder struct{ fd uintptr }

func (f fakeFder) Fd() uintptr { return f.fd }

func TestResolvePaths(t *testing.T) {
	for _, tc := range []struct {
		item     interface{}
		nofollow bool
		want     Target
	}{
		{"/tmp/f", false, Path("/tmp/f")},
		{"/tmp/f", true, Link("/tmp/f")},
		{[]byte("/tmp/f"), false, Path("/tmp/f")},
		{[]byte("/tmp/f"), true, Link("/tmp/f")},
	} {
		got, err := Resolve(tc.item, tc.nofollow)
		if err != nil {
			t.Fatalf("Resolve(%v, %v): %v", tc.item, tc.nofollow, err)
		}
		if got != tc.want {
			t.Errorf("Resolve(%v, %v) = %+v, want %+v", tc.item, tc.nofollow, got, tc.want)
		}
	}
}

func TestResolveDescriptors(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "f"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for _, item := range []interface{}{f, fakeFder{f.Fd()}, int(f.Fd()), f.Fd()} {
		// nofollow is irrelevant for descriptors; both spellings must
		// resolve identically.
		for _, nofollow := range []bool{false, true} {
			got, err := Resolve(item, nofollow)
			if err != nil {
				t.Fatalf("Resolve(%T, %v): %v", item, nofollow, err)
			}
			if want := Descriptor(int(f.Fd())); got != want {
				t.Errorf("Resolve(%T, %v) = %+v, want %+v", item, nofollow, got, want)
			}
		}
	}
}

func TestResolveTargetPassthrough(t *testing.T) {
	want := Link("/some/link")
	// An explicit Target wins over the nofollow flag.
	got, err := Resolve(want, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolveRejectsUnusableItems(t *testing.T) {
	for _, item := range []interface{}{nil, 3.14, struct{}{}, []string{"x"}, make(chan int)} {
		_, err := Resolve(item, false)
		if !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("Resolve(%T) = %v, want ErrInvalidTarget", item, err)
		}
	}
}

func TestOperationsRejectUnusableItems(t *testing.T) {
	bogus := struct{ x int }{}

	if _, err := List(bogus); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("List: %v, want ErrInvalidTarget", err)
	}
	if _, err := Get(bogus, "user.comment"); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Get: %v, want ErrInvalidTarget", err)
	}
	if _, err := GetAll(bogus); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("GetAll: %v, want ErrInvalidTarget", err)
	}
	if err := Set(bogus, "user.comment", nil); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Set: %v, want ErrInvalidTarget", err)
	}
	if err := Remove(bogus, "user.comment"); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Remove: %v, want ErrInvalidTarget", err)
	}
}

func TestTargetString(t *testing.T) {
	if got := Path("/a/b").String(); got != "/a/b" {
		t.Errorf("Path: %q", got)
	}
	if got := Link("/a/l").String(); got != "/a/l" {
		t.Errorf("Link: %q", got)
	}
	if got := Descriptor(7).String(); got != "fd 7" {
		t.Errorf("Descriptor: %q", got)
	}
}
