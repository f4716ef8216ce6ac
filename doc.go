// Package multibar renders multiple in-place progress bars on a text
// terminal. A single Progress coordinator owns every bar; callers hold
// lightweight Bar handles and advance them through the coordinator,
// which repaints the whole bar block with cursor movement escape
// sequences on each draw.
//
// Progress performs no internal locking and starts no goroutines:
// every operation runs synchronously on the calling goroutine. To
// share one Progress between goroutines, guard every call with a
// single external sync.Mutex. Handles themselves are plain values and
// need no synchronization to copy around.
//
// Output goes to stderr by default, so piped stdout data stays clean.
// The output is assumed to understand ANSI cursor movement; there is
// no capability negotiation. Running two coordinators against the same
// terminal is unsupported.
package multibar
