package wm

import "github.com/pkg/errors"

var (
	// ErrSiblingCycle is yielded when a sibling chain revisits a handle.
	ErrSiblingCycle = errors.New("window sibling chain loops")

	// ErrSiblingLimit is yielded when a walk exceeds Options.MaxSiblings.
	ErrSiblingLimit = errors.New("window sibling chain too long")

	// ErrNoProcessInspector is yielded by LinkedWindows when the provider
	// cannot enumerate threads.
	ErrNoProcessInspector = errors.New("process inspection not available on this platform")

	// ErrWalkNotStarted matches errors yielded before a walk produced its
	// first window. Errors yielded later are per-window or mid-walk failures.
	ErrWalkNotStarted = errors.New("window walk could not start")
)

// startError marks err as a failure to begin a walk.
type startError struct {
	err error
}

func notStarted(err error) error {
	return &startError{err: err}
}

func (e *startError) Error() string { return e.err.Error() }

func (e *startError) Unwrap() error { return e.err }

func (e *startError) Is(target error) bool {
	return target == ErrWalkNotStarted
}
