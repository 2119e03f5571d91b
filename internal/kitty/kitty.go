// Package kitty talks to the kitty terminal's remote control interface.
package kitty

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tenzin/deskctl/internal/execx"
)

// ErrWindowNotFound means the window id was absent from the kitten @ ls
// listing. That only happens when remote control is misconfigured or the
// listing format changed, so callers should fail loudly.
var ErrWindowNotFound = errors.New("window not found in kitty listing")

// osWindow mirrors the parts of the `kitten @ ls` payload we read.
type osWindow struct {
	Tabs []tab `json:"tabs"`
}

type tab struct {
	Windows []window `json:"windows"`
}

type window struct {
	ID      int `json:"id"`
	Columns int `json:"columns"`
}

// Client drives the kitten remote control binary.
type Client struct {
	runner execx.Runner
}

// NewClient creates a kitty remote control client.
func NewClient(runner execx.Runner) *Client {
	return &Client{runner: runner}
}

// WindowColumns returns the current column count of the kitty window with
// the given id, searching every tab of every OS window.
func (c *Client) WindowColumns(ctx context.Context, id int) (int, error) {
	out, err := c.runner.Output(ctx, "kitten", "@", "ls")
	if err != nil {
		return 0, fmt.Errorf("failed to list kitty windows: %w", err)
	}

	var osWindows []osWindow
	if err := json.Unmarshal(out, &osWindows); err != nil {
		return 0, fmt.Errorf("failed to parse kitty listing: %w", err)
	}

	for _, osWin := range osWindows {
		for _, t := range osWin.Tabs {
			for _, w := range t.Windows {
				if w.ID == id {
					return w.Columns, nil
				}
			}
		}
	}
	return 0, fmt.Errorf("%w: id %d", ErrWindowNotFound, id)
}

// ResizeWindow grows or shrinks the current window horizontally by
// increment cells.
func (c *Client) ResizeWindow(ctx context.Context, increment int) error {
	_, err := c.runner.Output(ctx, "kitten", "@", "resize-window",
		"--axis", "horizontal", "--increment", strconv.Itoa(increment))
	if err != nil {
		return fmt.Errorf("failed to resize window: %w", err)
	}
	return nil
}
