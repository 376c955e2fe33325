package passwd

import (
	"fmt"

	"k8s.io/klog/v2"
)

const (
	minBufferSize = 1024
	maxBufferSize = 16 << 20
)

// outcome is the result of one reentrant lookup attempt, or of the whole
// grow-and-retry sequence.
type outcome int

const (
	outcomeFound outcome = iota
	outcomeNotFound
	outcomeTooSmall
	outcomeFailed
	outcomeExhausted
)

func (o outcome) sentinel() error {
	switch o {
	case outcomeFound:
		return nil
	case outcomeNotFound:
		return ErrNotFound
	case outcomeExhausted:
		return ErrResourceExhausted
	}
	return ErrLookupFailed
}

// scratch is caller-owned working memory for a single lookup.
type scratch interface {
	// resize makes the buffer n bytes long, keeping it valid for the next
	// attempt. It reports false if the memory could not be obtained, in
	// which case the previous buffer (if any) is still owned by scratch.
	resize(n int) bool
	release()
}

// initialSize turns a sysconf suggestion into a starting buffer size. A hint
// of -1 means the system has none (FreeBSD).
func initialSize(hint int) int {
	return min(max(hint, minBufferSize), maxBufferSize)
}

// withScratch runs attempt with a buffer of size bytes, doubling it each time
// attempt reports outcomeTooSmall. buf is released before return.
func withScratch(buf scratch, size int, attempt func(size int) (outcome, error)) (outcome, error) {
	defer buf.release()

	size = min(max(size, 1), maxBufferSize)
	for {
		if !buf.resize(size) {
			return outcomeExhausted, fmt.Errorf("cannot allocate %d byte buffer", size)
		}
		o, err := attempt(size)
		if o != outcomeTooSmall {
			return o, err
		}
		if size >= maxBufferSize {
			return outcomeExhausted, fmt.Errorf("record larger than %d bytes", maxBufferSize)
		}
		next := min(size*2, maxBufferSize)
		klog.V(5).Infof("[passwd] buffer of %d bytes too small, retrying with %d", size, next)
		size = next
	}
}
