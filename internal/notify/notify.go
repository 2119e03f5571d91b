// Package notify sends desktop notifications.
package notify

import (
	"context"
	"strconv"
	"time"

	"github.com/tenzin/deskctl/internal/execx"
)

// Notifier delivers a desktop notification.
type Notifier interface {
	Send(ctx context.Context, title, body string, timeout time.Duration) error
}

// DesktopNotifier shells out to notify-send.
type DesktopNotifier struct {
	runner execx.Runner
	icon   string
}

// NewDesktop creates a notifier with the given icon name.
func NewDesktop(runner execx.Runner, icon string) *DesktopNotifier {
	return &DesktopNotifier{runner: runner, icon: icon}
}

// Send shows the notification for the given duration.
func (n *DesktopNotifier) Send(ctx context.Context, title, body string, timeout time.Duration) error {
	return n.runner.Run(ctx, "notify-send",
		"-i", n.icon,
		"-t", strconv.Itoa(int(timeout.Milliseconds())),
		title, body)
}

// Discard ignores every notification, for disabled config or tests.
type Discard struct{}

func (Discard) Send(context.Context, string, string, time.Duration) error { return nil }
