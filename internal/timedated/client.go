// Package timedated wraps the org.freedesktop.timedate1 system service.
// Every operation is an independent connect-then-call round trip on a
// private system bus connection; no connection state is retained between
// calls, so a failure in one operation never poisons the next.
package timedated

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	service    = "org.freedesktop.timedate1"
	objectPath = "/org/freedesktop/timedate1"
	iface      = "org.freedesktop.timedate1"
	propsIface = "org.freedesktop.DBus.Properties"

	defaultCallTimeout = 5 * time.Second
)

// Client talks to timedate1 over the system bus. The zero value is not
// usable; construct with New.
type Client struct {
	timeout time.Duration
}

// New returns a client whose individual operations are bounded by timeout.
// A non-positive timeout selects the default.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Client{timeout: timeout}
}

// Connect probes that the system bus is reachable and authenticable. It
// holds no connection open; it exists so callers can distinguish "the bus
// is down" before starting a query sequence.
func (c *Client) Connect(ctx context.Context) error {
	conn, err := connect()
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}

// CanNTP reports whether the service supports network time synchronization.
func (c *Client) CanNTP(ctx context.Context) (bool, error) {
	var v bool
	if err := c.getProperty(ctx, "CanNTP", &v); err != nil {
		return false, err
	}
	return v, nil
}

// NTPActive reports whether network time synchronization is currently on.
func (c *Client) NTPActive(ctx context.Context) (bool, error) {
	var v bool
	if err := c.getProperty(ctx, "NTP", &v); err != nil {
		return false, err
	}
	return v, nil
}

// CurrentTimezone returns the system timezone identifier, e.g. "Europe/Oslo".
func (c *Client) CurrentTimezone(ctx context.Context) (string, error) {
	var v string
	if err := c.getProperty(ctx, "Timezone", &v); err != nil {
		return "", err
	}
	return v, nil
}

// ListTimezones enumerates the timezone identifiers known to the service.
// The returned order is the service's own and is meaningful to callers.
func (c *Client) ListTimezones(ctx context.Context) ([]string, error) {
	var zones []string
	err := c.withObject(ctx, func(ctx context.Context, obj dbus.BusObject) error {
		if err := obj.CallWithContext(ctx, iface+".ListTimezones", 0).Store(&zones); err != nil {
			return fmt.Errorf("list timezones: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// SetNTP enables or disables network time synchronization. The second flag
// is the service's apply policy and is passed through unchanged.
func (c *Client) SetNTP(ctx context.Context, enabled, applyNow bool) error {
	return c.withObject(ctx, func(ctx context.Context, obj dbus.BusObject) error {
		if call := obj.CallWithContext(ctx, iface+".SetNTP", 0, enabled, applyNow); call.Err != nil {
			return fmt.Errorf("set ntp: %w", call.Err)
		}
		return nil
	})
}

// SetTimezone changes the system timezone. The second flag is the service's
// apply policy and is passed through unchanged.
func (c *Client) SetTimezone(ctx context.Context, zone string, applyNow bool) error {
	return c.withObject(ctx, func(ctx context.Context, obj dbus.BusObject) error {
		if call := obj.CallWithContext(ctx, iface+".SetTimezone", 0, zone, applyNow); call.Err != nil {
			return fmt.Errorf("set timezone: %w", call.Err)
		}
		return nil
	})
}

func (c *Client) getProperty(ctx context.Context, name string, out any) error {
	return c.withObject(ctx, func(ctx context.Context, obj dbus.BusObject) error {
		var variant dbus.Variant
		if err := obj.CallWithContext(ctx, propsIface+".Get", 0, iface, name).Store(&variant); err != nil {
			return fmt.Errorf("get %s: %w", name, err)
		}
		if err := variant.Store(out); err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		return nil
	})
}

// withObject dials the bus, runs one call against the timedate1 object and
// closes the connection again.
func (c *Client) withObject(ctx context.Context, call func(context.Context, dbus.BusObject) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := connect()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	return call(ctx, conn.Object(service, objectPath))
}

// connect dials a private system bus connection. Auth and Hello complete
// the handshake; callers own the returned connection.
func connect() (*dbus.Conn, error) {
	conn, err := dbus.SystemBusPrivate()
	if err != nil {
		return nil, fmt.Errorf("connect to system bus: %w", err)
	}
	if err := conn.Auth(nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("authenticate to system bus: %w", err)
	}
	if err := conn.Hello(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("register on system bus: %w", err)
	}
	return conn, nil
}
