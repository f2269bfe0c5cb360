package wm

import (
	"iter"

	"github.com/mj1618/wintree/internal/platform"
	"github.com/pkg/errors"
)

// LinkedWindows yields every window owned by any thread of w's process, in
// thread order and then in the order the OS reports each thread's windows.
//
// The thread list is held open for the duration of the walk and closed on
// every exit path, including when the consumer stops early. A process that
// exited before its threads could be opened is reported as an error wrapping
// platform.ErrProcessNotFound. Failures before the thread list is open match
// ErrWalkNotStarted.
func (q *Query) LinkedWindows(w *Window) iter.Seq2[*Window, error] {
	return func(yield func(*Window, error) bool) {
		if q.procs == nil {
			yield(nil, notStarted(ErrNoProcessInspector))
			return
		}
		pid, err := w.ProcessID()
		if err != nil {
			yield(nil, notStarted(err))
			return
		}

		threads, err := q.procs.OpenThreads(pid)
		if err != nil {
			yield(nil, notStarted(errors.Wrapf(err, "threads of process %d", pid)))
			return
		}
		defer func() {
			if err := threads.Close(); err != nil {
				q.logger.Warn("closing thread snapshot failed", "pid", pid, "err", err)
			}
		}()

		for {
			tid, ok, err := threads.Next()
			if err != nil {
				yield(nil, errors.Wrapf(err, "threads of process %d", pid))
				return
			}
			if !ok {
				return
			}

			// The OS reports a thread's windows through a callback, so one
			// thread is collected before its windows are yielded.
			var handles []platform.Handle
			err = q.procs.EnumThreadWindows(tid, func(h platform.Handle) bool {
				handles = append(handles, h)
				return true
			})
			if err != nil {
				yield(nil, errors.Wrapf(err, "windows of thread %d", tid))
				return
			}
			q.logger.Debug("thread windows", "pid", pid, "tid", tid, "windows", len(handles))

			for _, h := range handles {
				if !yield(q.Window(h), nil) {
					return
				}
			}
		}
	}
}
