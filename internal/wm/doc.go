// Package wm models the desktop window hierarchy as a lazily evaluated graph.
//
// A Window wraps one OS handle and fetches each attribute on first access.
// A Query walks sibling chains in z-order, classifies top-level application
// windows and finds the windows owned by the threads of a window's process.
// Sequences are pull-based iter.Seq2 values. Nothing is read from the OS
// until the consumer asks for the next element.
package wm
