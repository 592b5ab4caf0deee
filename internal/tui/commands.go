// internal/tui/commands.go
package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type commandInfo struct {
	execute func(m *Model, command, args string) tea.Cmd
}

var commandRegistry = make(map[string]commandInfo)

func registerCommand(name string, info commandInfo) {
	commandRegistry[name] = info
}

func init() {
	registerCommand("q", commandInfo{execute: cmdQuit})
	registerCommand("Q", commandInfo{execute: cmdQuit})
	registerCommand("quit", commandInfo{execute: cmdQuit})

	registerCommand("fzf", commandInfo{execute: cmdFzf})
	registerCommand("list", commandInfo{execute: cmdFocusList})
	registerCommand("card", commandInfo{execute: cmdFocusCard})
	registerCommand("noh", commandInfo{execute: cmdNoHighlight})
	registerCommand("nohlsearch", commandInfo{execute: cmdNoHighlight})
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	return clearStatusCmd(3 * time.Second)
}

func cmdQuit(m *Model, command, args string) tea.Cmd {
	return tea.Quit
}

func cmdFzf(m *Model, command, args string) tea.Cmd {
	return m.openFZF()
}

func cmdFocusList(m *Model, command, args string) tea.Cmd {
	id, err := strconv.Atoi(args)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Usage: :%s <id>", command))
	}
	for i, l := range m.board.Lists {
		if l.ID() == id {
			m.focusCard(i, m.listCardFocus[i])
			return nil
		}
	}
	return m.setStatus(fmt.Sprintf("No list with id %d", id))
}

func cmdFocusCard(m *Model, command, args string) tea.Cmd {
	id, err := strconv.Atoi(args)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Usage: :%s <id>", command))
	}
	for i, l := range m.board.Lists {
		for j, c := range l.Cards {
			if c.ID() == id {
				m.focusCard(i, j+1)
				return nil
			}
		}
	}
	return m.setStatus(fmt.Sprintf("No card with id %d", id))
}

func cmdNoHighlight(m *Model, command, args string) tea.Cmd {
	m.clearSearch()
	m.statusMessage = "Search highlighting cleared"
	return clearStatusCmd(2 * time.Second)
}
