// Package config handles loading and parsing the timedeck configuration file.
//
// # Overview
//
// This package reads timedeck's own TOML configuration, which is distinct from
// the applet settings file managed by the settings package. The config file
// controls how the program runs (theme, tick cadence, D-Bus call timeout, log
// location); the applet settings file holds the display preferences the page
// edits. Only the former lives here.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (for example via -config), use it
//  2. Otherwise, use ~/.config/timedeck/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # TOML Format
//
// Example config.toml with every recognized field:
//
//	theme = "dark"                    # "dark" or "light"
//	tick_seconds = 1                  # clock sample refresh cadence
//	call_timeout_seconds = 5          # per D-Bus call deadline
//	settings_path = "~/.config/timedeck/applet.toml"
//	locale = "de-DE"                  # overrides environment detection
//	log_file = "~/.local/state/timedeck/timedeck.log"
//	log_lines = 200                   # diagnostics pane history depth
//	debug = false                     # enable debug-level logging
//
// All fields are optional. Tilde expansion is performed on path fields.
//
// # Error Handling
//
// A missing config file is NOT an error; defaults are used so timedeck works
// out-of-the-box. A config file that exists but cannot be read or parsed IS an
// error, because silently ignoring a malformed file the user wrote would hide
// their mistake.
//
// Non-positive numeric fields are treated as absent rather than rejected.
//
// # Design Philosophy
//
// The config package is read-only and stateless. It loads configuration once
// at startup and returns an immutable Config struct; it does not watch the
// file for changes. Live reload applies only to the applet settings file,
// which the settings package watches separately.
package config
