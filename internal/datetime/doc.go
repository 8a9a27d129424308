// Package datetime implements the date and time settings page: the state,
// the message reducer that mutates it, and the background commands that
// talk to the system time service and the settings store.
//
// # Overview
//
// The package owns a single Model value holding the settings snapshot:
// NTP state, display preferences, the fetched timezone list with the
// current selection, and the cached rendering of the latest clock sample.
// Everything that changes the model flows through Update as a message;
// everything that performs I/O runs as a detached bubbletea command that
// reports back with a message of its own.
//
// # Architecture
//
//	User gesture (UI layer)            Command completion
//	        │                                  │
//	        ▼                                  ▼
//	   tea.Msg ──────────────► Update(msg) ◄───────── tea.Msg
//	                               │
//	                ┌──────────────┴──────────────┐
//	                ▼                             ▼
//	        new Model value               zero or one tea.Cmd
//	        (snapshot mutated,            (service call or
//	         date line recomputed)         settings write)
//
// The reducer never blocks and never performs I/O. Commands never touch
// the model; their only output is the message they return. Messages are
// folded in delivery order, so a reducer step is atomic from the UI's
// point of view.
//
// # Message Surface
//
// User intents:
//
//   - SetAutoSyncMsg: flip automatic synchronization, then ask the service
//     to apply it. Service failures are logged and the optimistic toggle
//     stands.
//   - SetMilitaryTimeMsg, SetFirstDayMsg, SetShowDateMsg: update the
//     in-memory value, rerender if needed, and write the key to the
//     settings store in the background. Writes are fire-and-forget.
//   - SelectTimezoneMsg: record the selection and, when the index resolves
//     to a fetched zone, ask the service to change the system timezone.
//
// Completions and housekeeping:
//
//   - RefreshedMsg: wholesale replacement of the service-derived state,
//     produced by the activation sequence.
//   - TickMsg: resample the clock and rerender the date line.
//   - SettingsReloadedMsg: fold in values picked up from an external edit
//     of the settings file.
//   - FaultMsg: log a failed service operation; state is untouched.
//   - NoOpMsg: completion of a command with nothing to fold in.
//
// # Activation
//
// Init (and Refresh, for manual re-runs) issues one command that probes
// the service connection and then collects everything in a fixed order:
// NTP capability, NTP active state, the timezone list, and the current
// timezone, which is resolved to a list index by linear search. The
// results arrive as a single RefreshedMsg. A failed probe aborts the
// whole sequence with a FaultMsg; a query that fails after a successful
// probe degrades to its zero value instead. The capability check guards
// the active-state query, so an unsupported service always reads as
// "sync off".
//
// # Persistence Model
//
// The three persisted preferences are optimistic: the in-memory value
// changes immediately on the user gesture, the disk write happens in the
// background, and a failed write is logged without rolling the value
// back. Memory and disk are therefore only best-effort consistent, which
// is acceptable for display preferences.
//
// # Concurrency
//
// In-flight commands are never cancelled. A stale completion applies
// through the same reducer path as everything else and may overwrite
// fresher state; with human-paced input on a settings page the last
// completion winning is acceptable. Overlapping timezone changes are not
// fenced by request identity for the same reason.
//
// # Rendering Contract
//
// The UI reads state exclusively through Snapshot. FormattedDate carries
// the placeholder text until the first clock sample exists; afterwards it
// is the formatter output, which is empty when no usable locale could be
// determined at startup. The weekday codec (DecodeFirstDay and
// EncodeFirstDay) translates between the applet's persisted weekday
// numbering and the four-entry start-of-week dropdown; the decode
// direction intentionally collapses unknown codes onto Sunday.
package datetime
