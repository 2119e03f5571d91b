// Package testutil holds helpers shared across test files.
package testutil

import (
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var loggerInitOnce sync.Once

// InitTestLogger silences the global zerolog logger so packages that log
// through it do not spam test output.
func InitTestLogger(t *testing.T) {
	t.Helper()
	loggerInitOnce.Do(func() {
		log.Logger = zerolog.New(io.Discard)
	})
}
