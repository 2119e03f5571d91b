// Package tmux wraps the tmux operations deskctl needs behind a narrow
// interface so session logic can run against a fake.
package tmux

import (
	"context"
	"fmt"
	"regexp"

	"github.com/tenzin/deskctl/internal/execx"
)

// validSessionNameRe rejects names tmux silently mangles (dots, colons).
var validSessionNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Tmux abstracts tmux session operations.
type Tmux interface {
	HasSession(ctx context.Context, name string) bool
	NewSession(ctx context.Context, name string) error
	SendKeys(ctx context.Context, target, keys string) error
	SplitWindow(ctx context.Context, command string) error
}

// Client is the exec-backed tmux implementation.
type Client struct {
	runner execx.Runner
}

// NewClient creates a tmux client using the given runner.
func NewClient(runner execx.Runner) *Client {
	return &Client{runner: runner}
}

// HasSession reports whether a session with the given name exists.
func (c *Client) HasSession(ctx context.Context, name string) bool {
	_, err := c.runner.Output(ctx, "tmux", "has-session", "-t", name)
	return err == nil
}

// NewSession creates a detached session.
func (c *Client) NewSession(ctx context.Context, name string) error {
	if !validSessionNameRe.MatchString(name) {
		return fmt.Errorf("invalid session name %q", name)
	}
	if _, err := c.runner.Output(ctx, "tmux", "new-session", "-d", "-s", name); err != nil {
		return fmt.Errorf("failed to create session %s: %w", name, err)
	}
	return nil
}

// SendKeys types keys into the target followed by Enter.
func (c *Client) SendKeys(ctx context.Context, target, keys string) error {
	if _, err := c.runner.Output(ctx, "tmux", "send-keys", "-t", target, keys, "Enter"); err != nil {
		return fmt.Errorf("failed to send keys to %s: %w", target, err)
	}
	return nil
}

// SplitWindow opens a new pane in the current window running command.
func (c *Client) SplitWindow(ctx context.Context, command string) error {
	if _, err := c.runner.Output(ctx, "tmux", "split-window", command); err != nil {
		return fmt.Errorf("failed to split window: %w", err)
	}
	return nil
}
