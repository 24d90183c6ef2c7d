// Package tui is the Bubble Tea REPL model for ember-cli: a single input
// line, a scrolling history of commands and their responses, and a
// connection to one emberdb server.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emberdb/emberdb/client"
	"github.com/emberdb/emberdb/clipboard"
	"github.com/emberdb/emberdb/wire"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

type historyEntry struct {
	command string
	result  string
	isError bool
}

// Model is the Bubble Tea model backing ember-cli.
type Model struct {
	target string
	client *client.Client

	input      string
	cursor     int
	history    []historyEntry
	lastValue  string // last rendered response value, for clipboard copy
	connectErr error
	width      int
	height     int
	scrollUp   int
}

// New creates a Model that will connect to target (host:port) on Init.
func New(target string) Model {
	return Model{target: target}
}

type connectedMsg struct {
	client *client.Client
}

type connectErrMsg struct {
	err error
}

type commandResultMsg struct {
	command string
	resp    wire.ServerResponse
	err     error
}

// Init starts the connection to the server.
func (m Model) Init() tea.Cmd {
	return connect(m.target)
}

func connect(target string) tea.Cmd {
	return func() tea.Msg {
		c, err := client.Connect(context.Background(), target)
		if err != nil {
			return connectErrMsg{err: err}
		}
		return connectedMsg{client: c}
	}
}

type clipboardResultMsg struct {
	err error
}

// copyLastValue copies the last rendered response to the system clipboard.
func copyLastValue(value string) tea.Cmd {
	if value == "" {
		return nil
	}
	return func() tea.Msg {
		return clipboardResultMsg{err: clipboard.Copy(context.Background(), value)}
	}
}

func runCommand(c *client.Client, line string) tea.Cmd {
	return func() tea.Msg {
		cmd, err := parseCommand(line)
		if err != nil {
			return commandResultMsg{command: line, err: err}
		}
		resp, err := c.Do(cmd)
		return commandResultMsg{command: line, resp: resp, err: err}
	}
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectedMsg:
		m.client = msg.client
		return m, nil

	case connectErrMsg:
		m.connectErr = msg.err
		return m, nil

	case commandResultMsg:
		entry := historyEntry{command: msg.command}
		if msg.err != nil {
			entry.result = msg.err.Error()
			entry.isError = true
		} else {
			entry.result = renderResponse(msg.resp)
			m.lastValue = entry.result
		}
		m.history = append(m.history, entry)
		m.scrollUp = 0
		return m, nil

	case clipboardResultMsg:
		if msg.err != nil {
			m.history = append(m.history, historyEntry{command: "(copy)", result: msg.err.Error(), isError: true})
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		line := strings.TrimSpace(m.input)
		m.input = ""
		m.cursor = 0
		if line == "" || m.client == nil {
			return m, nil
		}
		if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
			return m, tea.Quit
		}
		return m, runCommand(m.client, line)

	case "backspace":
		if m.cursor > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:m.cursor-1]) + string(runes[m.cursor:])
			m.cursor--
		}
		return m, nil

	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "right":
		if m.cursor < len([]rune(m.input)) {
			m.cursor++
		}
		return m, nil

	case "ctrl+y":
		return m, copyLastValue(m.lastValue)

	case "up":
		if m.scrollUp < len(m.history) {
			m.scrollUp++
		}
		return m, nil

	case "down":
		if m.scrollUp > 0 {
			m.scrollUp--
		}
		return m, nil
	}

	// Ignore non-printable keys.
	r := msg.Runes
	if len(r) == 0 {
		return m, nil
	}
	runes := []rune(m.input)
	m.input = string(runes[:m.cursor]) + string(r) + string(runes[m.cursor:])
	m.cursor += len(r)
	return m, nil
}

// View renders the REPL.
func (m Model) View() string {
	if m.connectErr != nil {
		return friendlyError(m.connectErr, m.width)
	}

	var b strings.Builder
	start := 0
	if m.height > 4 && len(m.history)-m.scrollUp > m.height-4 {
		start = len(m.history) - m.scrollUp - (m.height - 4)
	}
	if start < 0 {
		start = 0
	}
	end := len(m.history) - m.scrollUp
	if end < 0 {
		end = 0
	}
	for _, e := range m.history[start:end] {
		b.WriteString(truncateLine(promptStyle.Render("> ")+highlightCommand(e.command), m.width))
		b.WriteString("\n")
		if e.isError {
			b.WriteString(truncateLine(errorStyle.Render(e.result), m.width))
		} else {
			b.WriteString(truncateLine(e.result, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString(promptStyle.Render("emberdb> "))
	b.WriteString(renderInputWithCursor(m.input, m.cursor))
	if m.client == nil {
		b.WriteString("\n" + dimStyle.Render("connecting..."))
	}
	return b.String()
}

// renderResponse turns a ServerResponse into the text shown under a command.
func renderResponse(resp wire.ServerResponse) string {
	switch resp.Op {
	case wire.RespOk:
		return "OK"
	case wire.RespSingle:
		return resp.Value.Describe()
	case wire.RespBulk:
		parts := make([]string, len(resp.Values))
		for i, v := range resp.Values {
			parts[i] = v.Describe()
		}
		if len(parts) == 0 {
			return "(empty)"
		}
		return strings.Join(parts, "\n")
	case wire.RespOptInt:
		if resp.OptInt == nil {
			return "(nil)"
		}
		return wire.Int(int32(*resp.OptInt)).Describe()
	case wire.RespIntList:
		parts := make([]string, len(resp.Ints))
		for i, n := range resp.Ints {
			parts[i] = wire.Int(int32(n)).Describe()
		}
		if len(parts) == 0 {
			return "(empty)"
		}
		return strings.Join(parts, "\n")
	default:
		return resp.Err
	}
}
