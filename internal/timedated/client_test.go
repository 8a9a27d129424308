package timedated

import (
	"context"
	"testing"
	"time"
)

// Pointing the bus address at a socket that cannot exist makes every
// operation fail at the dial step, which is enough to pin down the
// fail-as-a-unit error shape without a real system bus.
func setUnreachableBus(t *testing.T) {
	t.Helper()
	t.Setenv("DBUS_SYSTEM_BUS_ADDRESS", "unix:path=/nonexistent/timedated-test.sock")
}

func TestNew_NonPositiveTimeoutUsesDefault(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		c := New(timeout)
		if c.timeout != defaultCallTimeout {
			t.Fatalf("New(%v).timeout = %v, want %v", timeout, c.timeout, defaultCallTimeout)
		}
	}
}

func TestConnect_UnreachableBusReportsError(t *testing.T) {
	setUnreachableBus(t)

	c := New(time.Second)
	if err := c.Connect(context.Background()); err == nil {
		t.Fatalf("Connect with unreachable bus returned nil error")
	}
}

func TestQueries_FailAsAUnitWhenBusUnreachable(t *testing.T) {
	setUnreachableBus(t)

	c := New(time.Second)
	ctx := context.Background()

	if _, err := c.CanNTP(ctx); err == nil {
		t.Fatalf("CanNTP returned nil error")
	}
	if _, err := c.NTPActive(ctx); err == nil {
		t.Fatalf("NTPActive returned nil error")
	}
	if _, err := c.CurrentTimezone(ctx); err == nil {
		t.Fatalf("CurrentTimezone returned nil error")
	}
	if _, err := c.ListTimezones(ctx); err == nil {
		t.Fatalf("ListTimezones returned nil error")
	}
}

func TestCommands_FailAsAUnitWhenBusUnreachable(t *testing.T) {
	setUnreachableBus(t)

	c := New(time.Second)
	ctx := context.Background()

	if err := c.SetNTP(ctx, true, true); err == nil {
		t.Fatalf("SetNTP returned nil error")
	}
	if err := c.SetTimezone(ctx, "UTC", true); err == nil {
		t.Fatalf("SetTimezone returned nil error")
	}
}
