package board_test

import (
	"testing"

	"kanbanlists/internal/board"
	"kanbanlists/internal/card"
	"kanbanlists/internal/list"
)

func TestDeepCopy(t *testing.T) {
	b := board.New([]list.List{
		list.New(1, "a", card.New(1, "x")),
		list.New(2, "b"),
	})
	cp := b.DeepCopy()

	cp.Lists[0].Name = "changed"
	cp.Lists[0].Cards[0].Text = "changed"
	cp.Lists = append(cp.Lists, list.New(3, "c"))

	if b.Lists[0].Name != "a" || b.Lists[0].Cards[0].Text != "x" {
		t.Fatalf("copy aliased original: %+v", b.Lists[0])
	}
	if len(b.Lists) != 2 {
		t.Fatalf("original has %d lists, want 2", len(b.Lists))
	}
}

func TestCardCount(t *testing.T) {
	b := board.New([]list.List{
		list.New(1, "a", card.New(1, "x"), card.New(2, "y")),
		list.New(2, "b", card.New(3, "z")),
	})
	if got := b.CardCount(); got != 3 {
		t.Fatalf("CardCount = %d, want 3", got)
	}
}
