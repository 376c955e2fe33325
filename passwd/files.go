package passwd

import (
	"fmt"
	"math"

	"github.com/moby/sys/user"
	"k8s.io/klog/v2"
)

const (
	defaultPasswdPath = "/etc/passwd"
	defaultGroupPath  = "/etc/group"
)

// Files resolves names by reading passwd(5) and group(5) formatted files,
// bypassing any other sources the system may be configured with. Empty
// paths default to /etc/passwd and /etc/group.
type Files struct {
	PasswdPath string
	GroupPath  string
}

func (f Files) ResolveUser(name string) (uint32, error) {
	path := f.PasswdPath
	if path == "" {
		path = defaultPasswdPath
	}
	if name == "" {
		return 0, newLookupError(Users, name, outcomeNotFound, nil)
	}
	users, err := user.ParsePasswdFileFilter(path, func(u user.User) bool {
		return u.Name == name
	})
	if err != nil {
		klog.V(4).Infof("[passwd] reading %s: %v", path, err)
		return 0, newLookupError(Users, name, outcomeFailed, err)
	}
	if len(users) == 0 {
		return 0, newLookupError(Users, name, outcomeNotFound, nil)
	}
	return fileID(Users, name, users[0].Uid)
}

func (f Files) ResolveGroup(name string) (uint32, error) {
	path := f.GroupPath
	if path == "" {
		path = defaultGroupPath
	}
	if name == "" {
		return 0, newLookupError(Groups, name, outcomeNotFound, nil)
	}
	groups, err := user.ParseGroupFileFilter(path, func(g user.Group) bool {
		return g.Name == name
	})
	if err != nil {
		klog.V(4).Infof("[passwd] reading %s: %v", path, err)
		return 0, newLookupError(Groups, name, outcomeFailed, err)
	}
	if len(groups) == 0 {
		return 0, newLookupError(Groups, name, outcomeNotFound, nil)
	}
	return fileID(Groups, name, groups[0].Gid)
}

func fileID(db Database, name string, id int) (uint32, error) {
	if id < 0 || int64(id) > math.MaxUint32 {
		return 0, newLookupError(db, name, outcomeFailed, fmt.Errorf("id %d out of range", id))
	}
	return uint32(id), nil
}
