// Package prompt provides interactive terminal input.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled means the user aborted the prompt (Ctrl+C or EOF).
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// Confirm asks a yes/no question and reports whether the user agreed.
// Anything other than y/yes counts as no.
func Confirm(prompter Prompter, question string) (bool, error) {
	coloredPrompt := color.CyanString(question + " [y/N] ")
	answer, err := prompter.Prompt(coloredPrompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
