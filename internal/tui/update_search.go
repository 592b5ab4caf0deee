package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) enterSearchMode(prompt string) tea.Cmd {
	m.statusMessage = ""
	m.mode = searchMode
	m.searchOrigin = searchResult{listIndex: m.focusedList, cardIndex: m.currentFocusedCard()}
	m.textInput.Prompt = prompt
	m.textInput.SetValue("")
	return m.textInput.Focus()
}

func (m *Model) updateSearchMode(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	prevVal := m.textInput.Value()

	m.textInput, cmd = m.textInput.Update(msg)

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			m.mode = normalMode
			m.textInput.Blur()
			m.textInput.SetValue("")
			m.searchResults = []searchResult{}
			m.jumpTo(m.searchOrigin)
			return nil
		case tea.KeyEnter:
			query := m.textInput.Value()
			if query == "" && m.lastSearchQuery != "" {
				query = m.lastSearchQuery
			}
			if query == "" {
				m.mode = normalMode
				m.textInput.Blur()
				m.jumpTo(m.searchOrigin)
				return nil
			}
			m.performSearch(query)
			m.lastSearchQuery = query
			m.lastSearchDirection = m.textInput.Prompt
			m.jumpTo(m.searchOrigin)
			cmd = m.jumpToFirstResult(m.lastSearchDirection, true)
			m.mode = normalMode
			m.textInput.Blur()
			m.textInput.SetValue("")
			return cmd
		}
	}

	if m.textInput.Value() != prevVal {
		m.performSearch(m.textInput.Value())
		m.jumpTo(m.searchOrigin)
		// no "not found" message while typing
		if len(m.searchResults) > 0 {
			m.jumpToFirstResult(m.textInput.Prompt, false)
		}
	}

	return cmd
}
