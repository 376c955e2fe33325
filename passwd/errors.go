package passwd

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the database has no entry with the given name.
	ErrNotFound = errors.New("no matching entry")
	// ErrLookupFailed means the database facility reported an error.
	ErrLookupFailed = errors.New("identity database lookup failed")
	// ErrResourceExhausted means the scratch buffer could not be allocated
	// or the record outgrew maxBufferSize.
	ErrResourceExhausted = errors.New("lookup buffer exhausted")
	// ErrUnsupported is returned on platforms without an identity database.
	ErrUnsupported = errors.New("identity lookup not supported on this platform")
)

// Database selects the account database a lookup consults.
type Database int

const (
	Users Database = iota
	Groups
)

func (d Database) String() string {
	switch d {
	case Users:
		return "user"
	case Groups:
		return "group"
	}
	return fmt.Sprintf("Database(%d)", int(d))
}

// LookupError describes a failed name resolution. Err is one of the package
// sentinel errors; Cause, if non-nil, is what the backend reported.
type LookupError struct {
	Database Database
	Name     string
	Err      error
	Cause    error
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("cannot resolve %s name %q: %v", e.Database, e.Name, e.Err)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LookupError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newLookupError(db Database, name string, o outcome, cause error) *LookupError {
	return &LookupError{Database: db, Name: name, Err: o.sentinel(), Cause: cause}
}
