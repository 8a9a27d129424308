package datetime

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Background commands. Each runs detached from the UI loop, converts its
// outcome into exactly one message and never touches the model directly.
// In-flight commands are not cancelled by newer ones; completions apply in
// arrival order through the reducer.

// refreshCmd runs the activation query sequence: probe the connection, then
// gather NTP state and the timezone list into a single RefreshedMsg. A
// failed probe aborts the whole sequence with a FaultMsg; failures of the
// individual queries after a successful probe degrade to defaults instead.
func (m Model) refreshCmd() tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx := context.Background()

		if err := service.Connect(ctx); err != nil {
			return FaultMsg{Reason: fmt.Sprintf("cannot reach time service: %v", err)}
		}

		info := Info{Selection: -1}

		canNTP, err := service.CanNTP(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("ntp capability query failed")
			canNTP = false
		}
		if canNTP {
			active, err := service.NTPActive(ctx)
			if err != nil {
				log.Debug().Err(err).Msg("ntp state query failed")
				active = false
			}
			info.NTPEnabled = active
		}

		zones, err := service.ListTimezones(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("timezone list query failed")
			zones = nil
		}
		info.Timezones = zones

		current, err := service.CurrentTimezone(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("current timezone query failed")
		} else {
			for i, zone := range zones {
				if zone == current {
					info.Selection = i
					break
				}
			}
		}

		return RefreshedMsg{Info: info}
	}
}

// setNTPCmd asks the service to switch automatic synchronization, applying
// the change immediately. Failures are logged, never surfaced; the
// optimistic toggle state stands either way.
func (m Model) setNTPCmd(enabled bool) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		if err := service.SetNTP(context.Background(), enabled, true); err != nil {
			log.Error().Err(err).Bool("enabled", enabled).Msg("set ntp failed")
		}
		return NoOpMsg{}
	}
}

// setTimezoneCmd asks the service to change the system timezone, applying
// immediately. Success triggers a Tick so the new zone shows up in the date
// line; failure becomes a FaultMsg.
func (m Model) setTimezoneCmd(zone string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		if err := service.SetTimezone(context.Background(), zone, true); err != nil {
			return FaultMsg{Reason: fmt.Sprintf("set timezone %s: %v", zone, err)}
		}
		return TickMsg{}
	}
}

// persistCmd writes one settings key in the background. Write failures are
// logged only; the in-memory value is never rolled back.
func persistCmd(key string, write func() error) tea.Cmd {
	return func() tea.Msg {
		if err := write(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("settings write failed")
		}
		return NoOpMsg{}
	}
}
