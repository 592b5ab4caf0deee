// internal/tui/update_command.go
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateCommandMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.mode = normalMode
			m.textInput.Blur()
			m.textInput.SetValue("")
			return nil
		case tea.KeyEnter:
			line := m.textInput.Value()
			m.mode = normalMode
			m.textInput.Blur()
			m.textInput.SetValue("")
			return m.ExecuteCommand(line)
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

// ExecuteCommand runs a command line such as "list 2" as if typed after ':'.
func (m *Model) ExecuteCommand(line string) tea.Cmd {
	parts := strings.SplitN(strings.TrimSpace(line), " ", 2)
	command := parts[0]
	if command == "" {
		return nil
	}

	var args string
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	info, ok := commandRegistry[command]
	if !ok {
		return m.setStatus("Unknown command: " + command)
	}
	return info.execute(m, command, args)
}
