package passwd_test

import (
	"os/user"
	"testing"

	"github.com/hlandau/degoutils/passwd"
	"golang.org/x/sys/unix"
)

func maxRSSKiB(t *testing.T) int64 {
	t.Helper()
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		t.Fatalf("getrusage: %v", err)
	}
	return ru.Maxrss // KiB on Linux
}

func TestSystemDoesNotLeak(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	cur, err := user.Current()
	if err != nil {
		t.Skipf("cannot determine current user: %v", err)
	}
	var sys passwd.System
	round := func() {
		sys.ResolveUser(cur.Username)
		sys.ResolveUser("zz-absent-leak-check")
		sys.ResolveGroup("zz-absent-leak-check")
		sys.ResolveUser("")
	}

	for i := 0; i < 1000; i++ {
		round()
	}
	before := maxRSSKiB(t)
	for i := 0; i < 15000; i++ {
		round()
	}
	after := maxRSSKiB(t)

	// 60k lookups each leaking a minimum sized buffer would add ~60 MiB.
	if grew := after - before; grew > 16<<10 {
		t.Errorf("max RSS grew by %d KiB over 60000 lookups", grew)
	}
}
