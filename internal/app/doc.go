// Package app provides the orchestration layer for timedeck.
//
// # Overview
//
// This package wires together configuration, logging, the settings store,
// the timedate1 client, the formatter, and the UI into the complete
// application. It is the composition root: every dependency is constructed
// here and handed to the packages that use it.
//
// # Startup Sequence
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/timedeck/config.toml
//	       ├─────> initLogging()        zerolog → rotating file
//	       ├─────> detectLocale()       config override, then environment
//	       ├─────> settings.New()       Applet settings store (OsFs)
//	       ├─────> timedated.New()      D-Bus timedate1 client
//	       ├─────> datetime.New()       Settings page model
//	       ├─────> ui.New()             Bubble Tea shell
//	       ├─────> store.Watch()        External settings changes → Program.Send
//	       └─────> Program.Run()        Blocks until quit
//
// The page's own activation refresh runs as its Init command inside the
// program; nothing talks to the time service before the UI loop exists.
//
// # Logging
//
// The global zerolog logger writes to a rotating file under
// $XDG_STATE_HOME/timedeck. A TUI owns the terminal for its entire run, so
// stdout and stderr stay untouched; the in-app diagnostics view reads the
// same file back instead.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file present but unreadable or unparseable
//   - Log directory creation failure
//   - The UI loop failing to start
//
// Recoverable conditions (logged, startup continues):
//   - Locale override or detection failure (date line renders empty)
//   - Settings watch setup failure (external edits are not picked up)
//
// Time service faults are not startup concerns at all; they surface later
// as fault messages inside the page.
package app
