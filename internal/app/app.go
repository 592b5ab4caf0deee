package app

import (
	"kanbanlists/internal/board"
	"kanbanlists/internal/card"
	"kanbanlists/internal/list"
)

// InitialLists returns the seed lists shown before any user interaction.
// Each call builds new slices; callers may modify the result freely.
func InitialLists() []list.List {
	return []list.List{
		list.New(1, "リスト１",
			card.New(1, "タスク１"),
			card.New(2, "タスク2"),
		),
		list.New(2, "リスト２",
			card.New(3, "タスク3"),
			card.New(4, "タスク４"),
		),
	}
}

func InitialBoard() board.Board {
	return board.New(InitialLists())
}
