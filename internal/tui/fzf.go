package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"kanbanlists/internal/board"
	"kanbanlists/internal/card"
)

type fzfCardSelectedMsg struct{ item FzfItem }
type fzfCancelledMsg struct{}

// FzfItem is one card offered by the finder, with where it lives.
type FzfItem struct {
	Card      card.Card
	ListName  string
	listIndex int
	cardIndex int
}

type itemSource []FzfItem

func (s itemSource) String(i int) string {
	return s[i].Card.Text
}

func (s itemSource) Len() int {
	return len(s)
}

func itemsFromBoard(b board.Board) []FzfItem {
	var items []FzfItem
	for li, l := range b.Lists {
		for ci, c := range l.Cards {
			items = append(items, FzfItem{
				Card:      c,
				ListName:  l.Name,
				listIndex: li,
				cardIndex: ci + 1,
			})
		}
	}
	return items
}

var (
	fzfPopupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	fzfPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	fzfSelectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("229"))

	fzfMatchedCharStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Underline(true)
)

type FZFModel struct {
	textinput     textinput.Model
	viewport      viewport.Model
	items         itemSource
	matches       fuzzy.Matches
	selectedIndex int
	width         int
	height        int
	ready         bool
}

func NewFZFModel() FZFModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Find a card..."
	ti.PromptStyle = fzfPromptStyle

	return FZFModel{
		textinput: ti,
	}
}

func popupSize(w, h int) (int, int) {
	popupWidth := int(float64(w) * 0.8)
	if popupWidth > 120 {
		popupWidth = 120
	}
	return popupWidth, int(float64(h) * 0.6)
}

func (m *FZFModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.ready = true

	popupWidth, popupHeight := popupSize(w, h)
	m.textinput.Width = popupWidth - 4
	m.viewport.Width = popupWidth - 4
	m.viewport.Height = popupHeight - 3
	m.refresh()
}

func (m *FZFModel) SetItems(items []FzfItem) {
	m.items = items
	m.filter()
}

func (m FZFModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FZFModel) Focus() tea.Cmd {
	m.textinput.SetValue("")
	m.filter()
	return m.textinput.Focus()
}

func (m *FZFModel) Blur() {
	m.textinput.Blur()
	m.textinput.SetValue("")
}

func (m FZFModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			return m, func() tea.Msg { return fzfCancelledMsg{} }

		case tea.KeyEnter:
			if len(m.matches) > 0 {
				selectedItem := m.items[m.matches[m.selectedIndex].Index]
				return m, func() tea.Msg { return fzfCardSelectedMsg{item: selectedItem} }
			}
			return m, func() tea.Msg { return fzfCancelledMsg{} }

		case tea.KeyDown, tea.KeyCtrlN:
			if m.selectedIndex < len(m.matches)-1 {
				m.selectedIndex++
			} else {
				m.selectedIndex = 0
			}
			m.refresh()
			return m, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if m.selectedIndex > 0 {
				m.selectedIndex--
			} else if len(m.matches) > 0 {
				m.selectedIndex = len(m.matches) - 1
			}
			m.refresh()
			return m, nil
		}
	}

	prev := m.textinput.Value()
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	if m.textinput.Value() != prev {
		m.filter()
	}
	return m, cmd
}

// filter ranks items against the query. An empty query lists every item in
// board order.
func (m *FZFModel) filter() {
	m.selectedIndex = 0
	query := m.textinput.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.items))
		for i, it := range m.items {
			m.matches[i] = fuzzy.Match{Str: it.Card.Text, Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(query, m.items)
	}
	m.viewport.SetYOffset(0)
	m.refresh()
}

// refresh re-renders the result rows into the viewport and scrolls the
// selection into view.
func (m *FZFModel) refresh() {
	m.viewport.SetContent(strings.TrimSuffix(m.renderResults(), "\n"))
	m.ensureSelectedItemVisible()
}

func (m *FZFModel) ensureSelectedItemVisible() {
	if m.viewport.Height <= 0 {
		return
	}
	if m.selectedIndex < m.viewport.YOffset {
		m.viewport.SetYOffset(m.selectedIndex)
	} else if m.selectedIndex >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.selectedIndex - m.viewport.Height + 1)
	}
}

func (m FZFModel) renderResults() string {
	var b strings.Builder
	for i, match := range m.matches {
		item := m.items[match.Index]

		line := "  "
		if i == m.selectedIndex {
			line = "> "
		}

		matchedIndexes := make(map[int]struct{}, len(match.MatchedIndexes))
		for _, idx := range match.MatchedIndexes {
			matchedIndexes[idx] = struct{}{}
		}

		var text strings.Builder
		for charIdx, char := range item.Card.Text {
			if _, ok := matchedIndexes[charIdx]; ok {
				text.WriteString(fzfMatchedCharStyle.Render(string(char)))
			} else {
				text.WriteRune(char)
			}
		}

		line += fmt.Sprintf("%s [%s]", text.String(), item.ListName)

		if i == m.selectedIndex {
			b.WriteString(fzfSelectedItemStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m FZFModel) View() string {
	if !m.ready {
		return ""
	}

	popupWidth, popupHeight := popupSize(m.width, m.height)

	content := lipgloss.JoinVertical(lipgloss.Left, "Find Card", m.viewport.View(), m.textinput.View())
	popup := fzfPopupStyle.Width(popupWidth).Height(popupHeight).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
}

// Selected returns the item under the cursor, if any.
func (m FZFModel) Selected() (FzfItem, bool) {
	if len(m.matches) == 0 {
		return FzfItem{}, false
	}
	return m.items[m.matches[m.selectedIndex].Index], true
}
