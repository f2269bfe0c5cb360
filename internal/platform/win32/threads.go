//go:build windows

package win32

import (
	"log/slog"
	"sync"
	"unsafe"

	"github.com/mj1618/wintree/internal/platform"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// ProcessInspector implements platform.ProcessInspector with the toolhelp
// snapshot API.
type ProcessInspector struct{}

// NewProcessInspector creates a new toolhelp-backed process inspector.
func NewProcessInspector() *ProcessInspector {
	return &ProcessInspector{}
}

// openProcess is replaced in tests.
var openProcess = windows.OpenProcess

// OpenThreads takes a system thread snapshot filtered to pid. The process is
// opened as well so its id cannot be reused during the walk. Protected
// processes refuse that handle; their threads are still listed from the
// snapshot alone.
func (p *ProcessInspector) OpenThreads(pid uint32) (platform.ThreadSnapshot, error) {
	process, err := openProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	switch {
	case err == windows.ERROR_INVALID_PARAMETER:
		return nil, errors.Wrapf(platform.ErrProcessNotFound, "pid %d", pid)
	case err == windows.ERROR_ACCESS_DENIED:
		slog.Default().Warn("process handle denied; listing threads from snapshot only", "pid", pid)
		process = 0
	case err != nil:
		return nil, errors.Wrapf(err, "OpenProcess(%d)", pid)
	}

	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPTHREAD, 0)
	if err != nil {
		if process != 0 {
			windows.CloseHandle(process)
		}
		return nil, errors.Wrap(err, "CreateToolhelp32Snapshot")
	}
	return &threadSnapshot{pid: pid, process: process, snap: snap}, nil
}

// The runtime never frees callbacks made by NewCallback and allows only a
// fixed number of them, so a single callback serves every enumeration. Each
// call registers its fn under an id passed through lParam.
var (
	enumMu     sync.Mutex
	enumFns    = make(map[uintptr]func(platform.Handle) bool)
	enumNextID uintptr

	enumThreadWindowsProc = windows.NewCallback(func(hwnd uintptr, id uintptr) uintptr {
		enumMu.Lock()
		fn := enumFns[id]
		enumMu.Unlock()
		if fn != nil && fn(platform.Handle(hwnd)) {
			return 1
		}
		return 0
	})
)

// EnumThreadWindows lists the non-child windows of a thread. A thread
// without windows makes the OS call report failure, which is not an error
// here.
func (p *ProcessInspector) EnumThreadWindows(tid uint32, fn func(platform.Handle) bool) error {
	enumMu.Lock()
	enumNextID++
	id := enumNextID
	enumFns[id] = fn
	enumMu.Unlock()

	defer func() {
		enumMu.Lock()
		delete(enumFns, id)
		enumMu.Unlock()
	}()

	procEnumThreadWindows.Call(uintptr(tid), enumThreadWindowsProc, id)
	return nil
}

type threadSnapshot struct {
	pid     uint32
	process windows.Handle
	snap    windows.Handle
	started bool
	done    bool
}

func (s *threadSnapshot) Next() (uint32, bool, error) {
	for !s.done {
		entry := windows.ThreadEntry32{Size: uint32(unsafe.Sizeof(windows.ThreadEntry32{}))}
		var err error
		if !s.started {
			s.started = true
			err = windows.Thread32First(s.snap, &entry)
		} else {
			err = windows.Thread32Next(s.snap, &entry)
		}
		if err == windows.ERROR_NO_MORE_FILES {
			s.done = true
			break
		}
		if err != nil {
			return 0, false, errors.Wrapf(err, "threads of process %d", s.pid)
		}
		if entry.OwnerProcessID == s.pid {
			return entry.ThreadID, true, nil
		}
	}
	return 0, false, nil
}

func (s *threadSnapshot) Close() error {
	snapErr := windows.CloseHandle(s.snap)
	var procErr error
	if s.process != 0 {
		procErr = windows.CloseHandle(s.process)
	}
	if snapErr != nil {
		return errors.Wrap(snapErr, "close thread snapshot")
	}
	return errors.Wrap(procErr, "close process handle")
}

var _ platform.ProcessInspector = (*ProcessInspector)(nil)
