package board

import "kanbanlists/internal/list"

type Board struct {
	Lists []list.List
}

func New(lists []list.List) Board {
	return Board{Lists: lists}
}

// DeepCopy returns a board that shares no slices with b.
func (b Board) DeepCopy() Board {
	lists := make([]list.List, len(b.Lists))
	for i, l := range b.Lists {
		lists[i] = l.Clone()
	}
	return Board{Lists: lists}
}

func (b Board) CardCount() int {
	n := 0
	for _, l := range b.Lists {
		n += l.CardCount()
	}
	return n
}
