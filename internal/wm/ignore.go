package wm

import "sort"

// defaultIgnoreClasses are shell and compositor classes that never represent
// an application window.
var defaultIgnoreClasses = []string{"Progman", "Button", "Dwm"}

// DefaultIgnoreClasses returns a copy of the baseline ignore-list.
func DefaultIgnoreClasses() []string {
	return append([]string(nil), defaultIgnoreClasses...)
}

// IgnoreList is a set of window class names excluded from top-level
// classification. Class names match exactly.
//
// An IgnoreList has a single writer: configure it before enumeration starts
// and do not mutate it while a Query walk is in progress.
type IgnoreList struct {
	names map[string]struct{}
}

// NewIgnoreList returns a list holding exactly names.
func NewIgnoreList(names ...string) *IgnoreList {
	l := &IgnoreList{names: make(map[string]struct{}, len(names))}
	l.Add(names...)
	return l
}

// DefaultIgnoreList returns a fresh list seeded with DefaultIgnoreClasses.
func DefaultIgnoreList() *IgnoreList {
	return NewIgnoreList(defaultIgnoreClasses...)
}

func (l *IgnoreList) Add(names ...string) {
	for _, n := range names {
		if n != "" {
			l.names[n] = struct{}{}
		}
	}
}

func (l *IgnoreList) Remove(names ...string) {
	for _, n := range names {
		delete(l.names, n)
	}
}

func (l *IgnoreList) Contains(name string) bool {
	if l == nil {
		return false
	}
	_, ok := l.names[name]
	return ok
}

func (l *IgnoreList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// Names returns the class names in sorted order.
func (l *IgnoreList) Names() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.names))
	for n := range l.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
