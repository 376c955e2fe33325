//go:build !unix

package passwd

func lookupUser(name string) (uint32, error) {
	return 0, &LookupError{Database: Users, Name: name, Err: ErrUnsupported}
}

func lookupGroup(name string) (uint32, error) {
	return 0, &LookupError{Database: Groups, Name: name, Err: ErrUnsupported}
}
