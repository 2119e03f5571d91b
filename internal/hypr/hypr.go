// Package hypr drives the Hyprland compositor via hyprctl.
package hypr

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tenzin/deskctl/internal/execx"
)

// client mirrors the fields of a `hyprctl -j clients` entry we read.
type client struct {
	Class string `json:"class"`
}

// Client wraps hyprctl invocations.
type Client struct {
	runner execx.Runner
}

// NewClient creates a hyprctl client.
func NewClient(runner execx.Runner) *Client {
	return &Client{runner: runner}
}

// HasWindow reports whether any client window has the given class.
func (c *Client) HasWindow(ctx context.Context, class string) (bool, error) {
	out, err := c.runner.Output(ctx, "hyprctl", "-j", "clients")
	if err != nil {
		return false, fmt.Errorf("failed to list clients: %w", err)
	}

	var clients []client
	if err := json.Unmarshal(out, &clients); err != nil {
		return false, fmt.Errorf("failed to parse client listing: %w", err)
	}

	for _, cl := range clients {
		if cl.Class == class {
			return true, nil
		}
	}
	return false, nil
}

// FocusWindow focuses the first window with the given class.
func (c *Client) FocusWindow(ctx context.Context, class string) error {
	if _, err := c.runner.Output(ctx, "hyprctl", "dispatch", "focuswindow", "class:"+class); err != nil {
		return fmt.Errorf("failed to focus window: %w", err)
	}
	return nil
}

// Exec launches a command through the compositor.
func (c *Client) Exec(ctx context.Context, command string) error {
	if _, err := c.runner.Output(ctx, "hyprctl", "dispatch", "exec", command); err != nil {
		return fmt.Errorf("failed to exec command: %w", err)
	}
	return nil
}
