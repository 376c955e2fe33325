//go:build cgo && unix

package passwd

/*
#cgo solaris CFLAGS: -D_POSIX_PTHREAD_SEMANTICS
#include <sys/types.h>
#include <pwd.h>
#include <grp.h>
#include <unistd.h>
#include <stdlib.h>

static int de_getpwnam_r(const char *name, struct passwd *pwd,
                         char *buf, size_t buflen, struct passwd **result) {
	return getpwnam_r(name, pwd, buf, buflen, result);
}

static int de_getgrnam_r(const char *name, struct group *grp,
                         char *buf, size_t buflen, struct group **result) {
	return getgrnam_r(name, grp, buf, buflen, result);
}
*/
import "C"

import (
	"unsafe"

	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"
)

// cScratch keeps the lookup buffer in C memory: the OS stores pointers into
// it from the Go-allocated struct passwd/group.
type cScratch struct {
	p unsafe.Pointer
}

func (s *cScratch) resize(n int) bool {
	p := C.realloc(s.p, C.size_t(n))
	if p == nil {
		return false
	}
	s.p = p
	return true
}

func (s *cScratch) release() {
	C.free(s.p)
	s.p = nil
}

func sizeHint(key C.int) int {
	return initialSize(int(C.sysconf(key)))
}

func classify(rv C.int, found bool) (outcome, error) {
	switch errno := unix.Errno(rv); {
	case errno == unix.ERANGE:
		return outcomeTooSmall, errno
	case errno != 0:
		return outcomeFailed, errno
	case !found:
		return outcomeNotFound, nil
	}
	return outcomeFound, nil
}

func lookupUser(name string) (uint32, error) {
	return lookupUserSize(name, sizeHint(C._SC_GETPW_R_SIZE_MAX))
}

// lookupUserSize is lookupUser starting from a buffer of size bytes.
func lookupUserSize(name string, size int) (uint32, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var (
		pwd    C.struct_passwd
		result *C.struct_passwd
		buf    cScratch
	)
	o, err := withScratch(&buf, size, func(size int) (outcome, error) {
		rv := C.de_getpwnam_r(cname, &pwd, (*C.char)(buf.p), C.size_t(size), &result)
		return classify(rv, result != nil)
	})
	if o != outcomeFound {
		klog.V(4).Infof("[passwd] getpwnam_r name=%q failed: outcome=%d err=%v", name, o, err)
		return 0, newLookupError(Users, name, o, err)
	}
	return uint32(pwd.pw_uid), nil
}

func lookupGroup(name string) (uint32, error) {
	return lookupGroupSize(name, sizeHint(C._SC_GETGR_R_SIZE_MAX))
}

func lookupGroupSize(name string, size int) (uint32, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var (
		grp    C.struct_group
		result *C.struct_group
		buf    cScratch
	)
	o, err := withScratch(&buf, size, func(size int) (outcome, error) {
		rv := C.de_getgrnam_r(cname, &grp, (*C.char)(buf.p), C.size_t(size), &result)
		return classify(rv, result != nil)
	})
	if o != outcomeFound {
		klog.V(4).Infof("[passwd] getgrnam_r name=%q failed: outcome=%d err=%v", name, o, err)
		return 0, newLookupError(Groups, name, o, err)
	}
	return uint32(grp.gr_gid), nil
}
