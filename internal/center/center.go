// Package center computes the left padding that centers text in a terminal.
package center

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// WidthFunc reports the terminal's column count.
type WidthFunc func() (int, error)

// TerminalWidth reads the controlling terminal's size from stdout.
func TerminalWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("failed to query terminal size: %w", err)
	}
	return width, nil
}

// Padding returns the number of spaces that centers text within width.
// The division truncates toward zero; text wider than the terminal gets
// zero padding rather than an error.
func Padding(width int, text string) int {
	pad := (width - runewidth.StringWidth(text)) / 2
	if pad < 0 {
		return 0
	}
	return pad
}

// Line renders the padded line for the given terminal width.
func Line(width int, text string) string {
	return strings.Repeat(" ", Padding(width, text)) + text
}
