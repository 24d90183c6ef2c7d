package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/emberdb/emberdb/highlight"
)

// highlightCommand renders a REPL command line with syntax highlighting.
func highlightCommand(line string) string {
	return highlight.Command(line)
}

// truncateLine cuts each line of s to width columns, accounting for ANSI
// escape sequences so highlighted text isn't split mid-code. width <= 0
// disables truncation (used before the first WindowSizeMsg arrives).
func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, 0, width)
	}
	return strings.Join(lines, "\n")
}

// renderInputWithCursor renders a text input with a block cursor at the
// given rune position.
func renderInputWithCursor(text string, cursorPos int) string {
	runes := []rune(text)
	if cursorPos >= len(runes) {
		return text + "█"
	}
	return string(runes[:cursorPos]) + "█" + string(runes[cursorPos:])
}

func friendlyError(err error, width int) string {
	msg := err.Error()

	var text string
	if strings.Contains(msg, "connection refused") {
		text = "Could not connect to emberd.\nIs emberd running?\n\nError: " + msg
	}
	if text == "" {
		text = "Error: " + msg
	}

	return lipgloss.NewStyle().Width(width).Render(text)
}
