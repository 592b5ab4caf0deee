package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"kanbanlists/internal/board"
)

type mode int

const (
	normalMode mode = iota
	commandMode
	searchMode
	fzfMode
)

// searchResult points at a list header (cardIndex 0) or a card (1-based).
type searchResult struct {
	listIndex int
	cardIndex int
}

type clearStatusMsg struct{}

func clearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Model is a read-only view over a board.
type Model struct {
	board         board.Board
	focusedList   int
	listCardFocus []int
	mode          mode

	textInput textinput.Model
	fzf       FZFModel

	searchResults          []searchResult
	currentSearchResultIdx int
	lastSearchQuery        string
	lastSearchDirection    string
	searchOrigin           searchResult

	statusMessage string
	lastGPress    time.Time

	width  int
	height int
}

func NewModel(b board.Board) Model {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.CharLimit = 256

	return Model{
		board:                  b.DeepCopy(),
		listCardFocus:          make([]int, len(b.Lists)),
		textInput:              ti,
		fzf:                    NewFZFModel(),
		currentSearchResultIdx: -1,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fzf.SetSize(msg.Width, msg.Height)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case fzfCardSelectedMsg:
		m.mode = normalMode
		m.fzf.Blur()
		m.focusCard(msg.item.listIndex, msg.item.cardIndex)
		return m, nil

	case fzfCancelledMsg:
		m.mode = normalMode
		m.fzf.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case normalMode:
		cmd = m.updateNormalMode(msg)
	case commandMode:
		cmd = m.updateCommandMode(msg)
	case searchMode:
		cmd = m.updateSearchMode(msg)
	case fzfMode:
		var fm tea.Model
		fm, cmd = m.fzf.Update(msg)
		m.fzf = fm.(FZFModel)
	}
	return m, cmd
}

func (m *Model) View() string {
	if m.mode == fzfMode {
		return m.fzf.View()
	}
	return renderBoard(m)
}

// FocusedList returns the index of the focused list.
func (m *Model) FocusedList() int {
	return m.focusedList
}

// FocusedCard returns the focused position in the focused list: 0 is the
// header, n is the n-th card.
func (m *Model) FocusedCard() int {
	return m.currentFocusedCard()
}

func (m *Model) currentFocusedCard() int {
	if m.focusedList >= len(m.listCardFocus) {
		return 0
	}
	return m.listCardFocus[m.focusedList]
}

func (m *Model) setCurrentFocusedCard(i int) {
	if m.focusedList >= len(m.listCardFocus) {
		return
	}
	m.listCardFocus[m.focusedList] = i
}

func (m *Model) clampFocusedCard() {
	if m.focusedList >= len(m.board.Lists) {
		return
	}
	n := m.board.Lists[m.focusedList].CardCount()
	if m.currentFocusedCard() > n {
		m.setCurrentFocusedCard(n)
	}
}

func (m *Model) focusCard(listIndex, cardIndex int) {
	if listIndex < 0 || listIndex >= len(m.board.Lists) {
		return
	}
	m.focusedList = listIndex
	m.setCurrentFocusedCard(cardIndex)
	m.clampFocusedCard()
}
