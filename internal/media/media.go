// Package media controls desktop media players.
package media

import (
	"context"

	"github.com/tenzin/deskctl/internal/execx"
)

// Controller pauses media playback.
type Controller interface {
	PauseAll(ctx context.Context) error
}

// PlayerctlController drives playerctl over MPRIS.
type PlayerctlController struct {
	runner execx.Runner
}

// NewPlayerctl creates a controller backed by the playerctl binary.
func NewPlayerctl(runner execx.Runner) *PlayerctlController {
	return &PlayerctlController{runner: runner}
}

// PauseAll pauses every running player.
func (c *PlayerctlController) PauseAll(ctx context.Context) error {
	return c.runner.Run(ctx, "playerctl", "--all-players", "pause")
}
