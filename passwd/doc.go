// Package passwd resolves user and group names to numeric identifiers as the
// operating system's identity database currently sees them.
//
// Lookups go through the reentrant getpwnam_r/getgrnam_r facilities when cgo
// is available, so whatever backs the database (local files, LDAP, sssd...)
// is consulted. Without cgo the passwd(5) and group(5) files are read
// directly.
//
// A nil error is the only success signal. Failures wrap one of ErrNotFound,
// ErrLookupFailed, ErrResourceExhausted or ErrUnsupported for callers that
// need to tell them apart.
package passwd
