// internal/tui/update_normal.go
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const chordTimeout = 500 * time.Millisecond

func (m *Model) updateNormalMode(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if keyMsg.Type == tea.KeyCtrlP {
		return m.openFZF()
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return tea.Quit

	case "esc":
		m.statusMessage = ""

	case ":":
		m.statusMessage = ""
		m.mode = commandMode
		m.textInput.Prompt = ":"
		m.textInput.SetValue("")
		return m.textInput.Focus()

	case "/":
		return m.enterSearchMode("/")

	case "?":
		return m.enterSearchMode("?")

	case "n":
		return m.findNext()

	case "N":
		return m.findPrev()

	case "h", "left":
		if m.focusedList > 0 {
			m.focusedList--
			m.clampFocusedCard()
		}

	case "l", "right":
		if m.focusedList < len(m.board.Lists)-1 {
			m.focusedList++
			m.clampFocusedCard()
		}

	case "k", "up":
		currentFocus := m.currentFocusedCard()
		if currentFocus > 0 {
			m.setCurrentFocusedCard(currentFocus - 1)
		}

	case "j", "down":
		if len(m.board.Lists) == 0 {
			return nil
		}
		currentFocus := m.currentFocusedCard()
		if currentFocus < m.board.Lists[m.focusedList].CardCount() {
			m.setCurrentFocusedCard(currentFocus + 1)
		}

	case "g":
		if time.Since(m.lastGPress) < chordTimeout {
			if len(m.board.Lists) > 0 && m.board.Lists[m.focusedList].CardCount() > 0 {
				m.setCurrentFocusedCard(1)
			}
			m.lastGPress = time.Time{}
		} else {
			m.lastGPress = time.Now()
		}

	case "G":
		if len(m.board.Lists) == 0 {
			return nil
		}
		if n := m.board.Lists[m.focusedList].CardCount(); n > 0 {
			m.setCurrentFocusedCard(n)
		}
	}
	return nil
}

func (m *Model) openFZF() tea.Cmd {
	m.statusMessage = ""
	m.mode = fzfMode
	m.fzf.SetItems(itemsFromBoard(m.board))
	return tea.Batch(m.fzf.Focus(), textinput.Blink)
}
