package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) performSearch(query string) {
	m.searchResults = []searchResult{}
	m.currentSearchResultIdx = -1
	if query == "" {
		return
	}

	lowerQuery := strings.ToLower(query)

	for listIdx, l := range m.board.Lists {
		if strings.Contains(strings.ToLower(l.Name), lowerQuery) {
			m.searchResults = append(m.searchResults, searchResult{listIndex: listIdx})
		}
		for cardIdx, c := range l.Cards {
			if strings.Contains(strings.ToLower(c.Text), lowerQuery) {
				m.searchResults = append(m.searchResults, searchResult{
					listIndex: listIdx,
					cardIndex: cardIdx + 1,
				})
			}
		}
	}
}

func (m *Model) isSearchMatch(listIndex, cardIndex int) bool {
	if m.lastSearchQuery == "" {
		return false
	}
	for _, res := range m.searchResults {
		if res.listIndex == listIndex && res.cardIndex == cardIndex {
			return true
		}
	}
	return false
}

func (m *Model) jumpTo(res searchResult) {
	m.focusCard(res.listIndex, res.cardIndex)
}

// jumpToFirstResult moves to the first result after the focus for "/" or
// before it for "?".
func (m *Model) jumpToFirstResult(direction string, showMessageOnFail bool) tea.Cmd {
	if len(m.searchResults) == 0 {
		if showMessageOnFail {
			m.statusMessage = "Pattern not found: " + m.lastSearchQuery
			m.textInput.SetValue("")
			return clearStatusCmd(2 * time.Second)
		}
		return nil
	}

	currentList := m.focusedList
	currentCard := m.currentFocusedCard()

	nextIdx := -1
	if direction == "/" {
		for i, res := range m.searchResults {
			if res.listIndex > currentList || (res.listIndex == currentList && res.cardIndex > currentCard) {
				nextIdx = i
				break
			}
		}
		if nextIdx == -1 {
			nextIdx = 0
		}
	} else {
		for i := len(m.searchResults) - 1; i >= 0; i-- {
			res := m.searchResults[i]
			if res.listIndex < currentList || (res.listIndex == currentList && res.cardIndex < currentCard) {
				nextIdx = i
				break
			}
		}
		if nextIdx == -1 {
			nextIdx = len(m.searchResults) - 1
		}
	}
	m.currentSearchResultIdx = nextIdx
	m.jumpTo(m.searchResults[nextIdx])
	return nil
}

// step moves forward through the results when forward is true, wrapping at
// either end.
func (m *Model) step(forward bool) tea.Cmd {
	if m.lastSearchQuery == "" {
		m.statusMessage = "No previous search"
		return clearStatusCmd(2 * time.Second)
	}
	if len(m.searchResults) == 0 {
		m.performSearch(m.lastSearchQuery)
		direction := "/"
		if !forward {
			direction = "?"
		}
		return m.jumpToFirstResult(direction, true)
	}

	n := len(m.searchResults)
	if forward {
		m.currentSearchResultIdx = (m.currentSearchResultIdx + 1) % n
	} else {
		m.currentSearchResultIdx--
		if m.currentSearchResultIdx < 0 {
			m.currentSearchResultIdx = n - 1
		}
	}
	m.jumpTo(m.searchResults[m.currentSearchResultIdx])
	return nil
}

func (m *Model) findNext() tea.Cmd {
	return m.step(m.lastSearchDirection != "?")
}

func (m *Model) findPrev() tea.Cmd {
	return m.step(m.lastSearchDirection == "?")
}

func (m *Model) clearSearch() {
	m.lastSearchQuery = ""
	m.searchResults = []searchResult{}
	m.currentSearchResultIdx = -1
}
