// Package lid watches the laptop lid switch and pauses media on close.
package lid

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/tenzin/deskctl/internal/logging"
	"github.com/tenzin/deskctl/internal/media"
)

// DefaultStatePath is the ACPI lid switch state file.
const DefaultStatePath = "/proc/acpi/button/lid/LID0/state"

const closedState = "closed"

// StateReader returns the current lid state ("open" or "closed").
type StateReader func() (string, error)

// FileStateReader reads the ACPI state file. The file holds a single line
// like "state:      open"; the second whitespace-separated field is the
// state.
func FileStateReader(fs afero.Fs, path string) StateReader {
	return func() (string, error) {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return "", fmt.Errorf("failed to read lid state: %w", err)
		}
		fields := strings.Fields(string(data))
		if len(fields) < 2 {
			return "", fmt.Errorf("malformed lid state: %q", string(data))
		}
		return fields[1], nil
	}
}

// Monitor polls the lid state and reacts to close transitions.
type Monitor struct {
	read     StateReader
	media    media.Controller
	interval time.Duration
}

// NewMonitor creates a monitor polling read on the given interval.
func NewMonitor(read StateReader, controller media.Controller, interval time.Duration) *Monitor {
	return &Monitor{read: read, media: controller, interval: interval}
}

// Run polls until ctx is canceled. Players are paused only on a transition
// into the closed state; opening the lid and repeated identical states do
// nothing. There is deliberately no resume-on-open.
func (m *Monitor) Run(ctx context.Context) error {
	log := logging.Get(ctx)
	log.Info().Msg("lid monitor started")
	defer log.Info().Msg("lid monitor stopped")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	previous := ""
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			state, err := m.read()
			if err != nil {
				log.Debug().Err(err).Msg("lid state unavailable")
				continue
			}
			if state != previous && state == closedState {
				log.Info().Msg("lid closed, pausing players")
				if err := m.media.PauseAll(ctx); err != nil {
					log.Error().Err(err).Msg("failed to pause players")
				}
			}
			previous = state
		}
	}
}
