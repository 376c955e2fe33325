//go:build cgo && unix

package passwd

import (
	"errors"
	"os/user"
	"strconv"
	"testing"
)

func TestLookupGrowsFromTinyBuffer(t *testing.T) {
	cur, err := user.Current()
	if err != nil {
		t.Skipf("cannot determine current user: %v", err)
	}
	u, err := user.Lookup(cur.Username)
	if err != nil {
		t.Skipf("current user %q has no database entry: %v", cur.Username, err)
	}
	g, err := user.LookupGroupId(u.Gid)
	if err != nil {
		t.Skipf("primary group %s has no database entry: %v", u.Gid, err)
	}

	for _, size := range []int{1, 7, 64} {
		uid, err := lookupUserSize(u.Username, size)
		if err != nil {
			t.Fatalf("lookupUserSize(%q, %d): %v", u.Username, size, err)
		}
		if got := strconv.FormatUint(uint64(uid), 10); got != u.Uid {
			t.Errorf("lookupUserSize(%q, %d) = %s, want %s", u.Username, size, got, u.Uid)
		}

		gid, err := lookupGroupSize(g.Name, size)
		if err != nil {
			t.Fatalf("lookupGroupSize(%q, %d): %v", g.Name, size, err)
		}
		if got := strconv.FormatUint(uint64(gid), 10); got != g.Gid {
			t.Errorf("lookupGroupSize(%q, %d) = %s, want %s", g.Name, size, got, g.Gid)
		}
	}
}

func TestLookupTinyBufferAbsentName(t *testing.T) {
	if _, err := lookupUserSize("zz-absent-tiny-buffer", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("lookupUserSize(absent, 1) error = %v, want ErrNotFound", err)
	}
	if _, err := lookupGroupSize("zz-absent-tiny-buffer", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("lookupGroupSize(absent, 1) error = %v, want ErrNotFound", err)
	}
}
