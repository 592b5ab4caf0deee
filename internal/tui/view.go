package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"kanbanlists/internal/card"
	"kanbanlists/internal/list"
)

const helpLine = "h/l lists  j/k cards  / ? search  n/N next/prev  ctrl+p find  : command  q quit"

var (
	listHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	focusedHeaderStyle = listHeaderStyle.
				Bold(true).
				Underline(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 1).
			Width(22)

	focusedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("205"))

	matchedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("214"))

	listStyle = lipgloss.NewStyle().
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func renderBoard(m *Model) string {
	if len(m.board.Lists) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, "No lists", renderStatus(m))
	}

	var renderedLists []string
	for i, l := range m.board.Lists {
		renderedLists = append(renderedLists, renderList(l, m, i))
	}
	lists := lipgloss.JoinHorizontal(lipgloss.Top, renderedLists...)
	return lipgloss.JoinVertical(lipgloss.Left, lists, renderStatus(m))
}

func renderList(l list.List, m *Model, listIndex int) string {
	header := fmt.Sprintf("%s %d", l.Name, l.CardCount())
	headerStyle := listHeaderStyle
	if listIndex == m.focusedList && m.listCardFocus[listIndex] == 0 {
		headerStyle = focusedHeaderStyle
	}
	renderedHeader := headerStyle.Render(header)

	var renderedCards []string
	for i, c := range l.Cards {
		renderedCards = append(renderedCards, renderCard(c, m, listIndex, i+1))
	}

	cards := strings.Join(renderedCards, "\n")
	return listStyle.Render(lipgloss.JoinVertical(lipgloss.Left, renderedHeader, cards))
}

func renderCard(c card.Card, m *Model, listIndex, cardIndex int) string {
	style := cardStyle
	switch {
	case m.focusedList == listIndex && m.listCardFocus[listIndex] == cardIndex:
		style = focusedCardStyle
	case m.isSearchMatch(listIndex, cardIndex):
		style = matchedCardStyle
	}
	return style.Render(c.Text)
}

func renderStatus(m *Model) string {
	switch m.mode {
	case commandMode, searchMode:
		return m.textInput.View()
	}
	if m.statusMessage != "" {
		return m.statusMessage
	}
	return statusStyle.Render(helpLine)
}
