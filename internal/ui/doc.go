// Package ui provides the terminal user interface for timedeck.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The root Model here owns view routing, the
// clock tick loop, theming, and the help overlay; all date and time semantics
// live in the hosted datetime.Model. The shell translates key presses into
// datetime messages, folds them through the page reducer synchronously, and
// lets the returned commands run in the background.
//
// # Package Structure
//
//   - app.go: root model, message routing, tick loop, view composition
//   - settings.go: the settings form (toggles, weekday choice, timezone row)
//   - picker.go: timezone picker built on bubbles/list with filtering
//   - diagnostics.go: viewport over the application's own log file
//   - header.go: title line and per-view command hints bar
//   - help.go: keyboard shortcut overlay
//   - keys.go, strings.go, theme.go: bindings, display strings, palettes
//
// # Views
//
// Three views are available:
//
//   - Settings: the date and time form; j/k moves between rows, Space and
//     enter activate them
//   - Time zones: a filterable list over the service-reported zone names;
//     selection is reported against the unfiltered list's ordering
//   - Diagnostics: the tail of timedeck's own log file, following new
//     entries until scrolled
//
// # Message Flow
//
//  1. A key press is translated into a datetime message and applied to the
//     page immediately, on the UI goroutine
//  2. The page returns a background command (a D-Bus call, a settings
//     write); its completion message flows back through Update
//  3. A tea.Tick delivers the page's Tick once per configured interval,
//     keeping the rendered date current
//  4. External processes appear too: the settings watcher injects
//     SettingsReloadedMsg via Program.Send
//
// All unrecognized messages fall through to the page, so new page messages
// need no shell changes.
//
// # Display Strings
//
// Every user-visible string comes from the Strings table passed in through
// Options. The table is constructed once at startup; this package never
// consults globals or the environment for text.
//
// # Design Principles
//
//   - The page model is the single source of truth; the shell renders its
//     Snapshot and never caches settings state of its own
//   - No I/O on the UI goroutine; reads and writes happen inside commands
//   - The terminal's own background is left alone, themes only pick
//     foregrounds readable on dark or light backdrops
package ui
