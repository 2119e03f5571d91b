// Package execx abstracts external command execution so components that
// drive tmux, kitty, playerctl and friends can be tested against a fake.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Runner executes external commands.
type Runner interface {
	// Output runs the command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs the command ignoring output, inheriting the caller's
	// stdio so interactive programs work.
	Run(ctx context.Context, name string, args ...string) error
	// RunWithEnv behaves like Run with extra environment entries
	// appended to the current environment.
	RunWithEnv(ctx context.Context, env []string, name string, args ...string) error
}

// OSRunner executes commands on the real system.
type OSRunner struct{}

// NewOSRunner creates a runner backed by os/exec.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

func (*OSRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		log.Debug().
			Str("command", name).
			Strs("args", args).
			Str("stderr", stderr.String()).
			Err(err).
			Msg("command failed")
		return out, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func (*OSRunner) Run(ctx context.Context, name string, args ...string) error {
	return runWithEnv(ctx, nil, name, args...)
}

func (*OSRunner) RunWithEnv(ctx context.Context, env []string, name string, args ...string) error {
	return runWithEnv(ctx, env, name, args...)
}

func runWithEnv(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	if err := cmd.Run(); err != nil {
		log.Debug().
			Str("command", name).
			Strs("args", args).
			Err(err).
			Msg("command failed")
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
