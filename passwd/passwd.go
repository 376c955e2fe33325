package passwd

import (
	"fmt"
	"strconv"
)

// Resolver maps account names to numeric identifiers.
type Resolver interface {
	ResolveUser(name string) (uint32, error)
	ResolveGroup(name string) (uint32, error)
}

// System resolves names against the operating system's identity database.
// It holds no state and is safe for concurrent use.
type System struct{}

func (System) ResolveUser(name string) (uint32, error)  { return lookupUser(name) }
func (System) ResolveGroup(name string) (uint32, error) { return lookupGroup(name) }

// Default is the Resolver used by the package-level functions. Replace it
// only during program initialization.
var Default Resolver = System{}

// ResolveUser returns the uid of the user account called name.
func ResolveUser(name string) (uint32, error) {
	return Default.ResolveUser(name)
}

// ResolveGroup returns the gid of the group called name.
func ResolveGroup(name string) (uint32, error) {
	return Default.ResolveGroup(name)
}

// ParseUID accepts either a decimal uid below 2^31, returned as is, or a user
// name.
func ParseUID(uidOrUser string) (uint32, error) {
	return parseID(uidOrUser, Default.ResolveUser)
}

// ParseGID accepts either a decimal gid below 2^31, returned as is, or a
// group name.
func ParseGID(gidOrGroup string) (uint32, error) {
	return parseID(gidOrGroup, Default.ResolveGroup)
}

func parseID(s string, resolve func(string) (uint32, error)) (uint32, error) {
	// Larger values include (uid_t)-1, which chown and setresuid take as
	// "unchanged".
	if n, err := strconv.ParseUint(s, 10, 31); err == nil {
		return uint32(n), nil
	}
	id, err := resolve(s)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a numeric id nor a known name: %w", s, err)
	}
	return id, nil
}
