// Package logtail reads and formats the application's own log file for the
// in-app diagnostics pane.
//
// # Overview
//
// The application logs structured JSON events to a file (the terminal is
// owned by the TUI, so nothing may write to stdout or stderr while it
// runs). This package turns the end of that file back into human-readable
// lines: it extracts the last N lines without loading the whole file, then
// decodes each JSON event into a compact console-style rendering.
//
// # Reading
//
// Read uses a ring buffer of size maxLines over a single sequential scan,
// so memory stays O(maxLines) regardless of file size and the returned
// lines keep chronological order. A missing file yields no lines rather
// than an error; the application may simply not have logged anything yet.
//
// # Formatting
//
// Parse splits one JSON event into its time, level, message and remaining
// fields. Times collapse to clock time (15:04:05), levels to a three-letter
// tag (INF, WRN, ERR), and all other fields render as sorted key=value
// pairs:
//
//	{"level":"error","time":"...","message":"set ntp failed","enabled":true}
//	→ 14:05:06 ERR set ntp failed enabled=true
//
// Lines that are not JSON objects pass through verbatim, so stray panics or
// foreign content in the file still display. Render composes Read and
// Parse for the common case.
//
// # Design Rationale
//
// The package stays deliberately small:
//   - No file watching (the pane re-reads on demand)
//   - No rotation handling (reads the current file only)
//   - No coloring (the UI layer styles by level tag)
//   - Pure functions, no global state
package logtail
