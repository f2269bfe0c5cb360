//go:build windows

package win32

import (
	"errors"
	"os"
	"testing"

	"github.com/mj1618/wintree/internal/platform"
	"golang.org/x/sys/windows"
)

func TestDesktopWindow(t *testing.T) {
	ws := NewWindowSystem()
	h, err := ws.DesktopWindow()
	if err != nil {
		t.Fatal(err)
	}
	if h.IsZero() {
		t.Fatal("desktop window handle is zero")
	}
	class, err := ws.ClassName(h)
	if err != nil {
		t.Fatal(err)
	}
	if class != "#32769" {
		t.Errorf("got class %q, want #32769", class)
	}
}

func TestClassName_InvalidHandle(t *testing.T) {
	_, err := NewWindowSystem().ClassName(platform.Handle(0xDEAD0))
	if !errors.Is(err, platform.ErrInvalidHandle) {
		t.Errorf("expected ErrInvalidHandle, got %v", err)
	}
}

func TestOpenThreads_CurrentProcess(t *testing.T) {
	snap, err := NewProcessInspector().OpenThreads(uint32(os.Getpid()))
	if err != nil {
		t.Fatal(err)
	}
	defer snap.Close()

	n := countThreads(t, snap)
	if n == 0 {
		t.Error("expected at least one thread in the current process")
	}
}

func countThreads(t *testing.T, snap platform.ThreadSnapshot) int {
	t.Helper()
	n := 0
	for {
		_, ok, err := snap.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			return n
		}
		n++
	}
}

func TestOpenThreads_AccessDeniedUsesSnapshotOnly(t *testing.T) {
	orig := openProcess
	openProcess = func(uint32, bool, uint32) (windows.Handle, error) {
		return 0, windows.ERROR_ACCESS_DENIED
	}
	defer func() { openProcess = orig }()

	snap, err := NewProcessInspector().OpenThreads(uint32(os.Getpid()))
	if err != nil {
		t.Fatal(err)
	}
	if countThreads(t, snap) == 0 {
		t.Error("expected threads from the snapshot")
	}
	if err := snap.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestOpenThreads_NoSuchProcess(t *testing.T) {
	orig := openProcess
	openProcess = func(uint32, bool, uint32) (windows.Handle, error) {
		return 0, windows.ERROR_INVALID_PARAMETER
	}
	defer func() { openProcess = orig }()

	if _, err := NewProcessInspector().OpenThreads(1); !errors.Is(err, platform.ErrProcessNotFound) {
		t.Errorf("expected ErrProcessNotFound, got %v", err)
	}
}

// NewCallback slots are never freed, so repeated enumeration must not
// allocate new ones.
func TestEnumThreadWindows_ManyCalls(t *testing.T) {
	p := NewProcessInspector()
	tid := windows.GetCurrentThreadId()
	for i := 0; i < 2500; i++ {
		if err := p.EnumThreadWindows(tid, func(platform.Handle) bool { return true }); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	enumMu.Lock()
	defer enumMu.Unlock()
	if len(enumFns) != 0 {
		t.Errorf("%d enumeration callbacks left registered", len(enumFns))
	}
}
