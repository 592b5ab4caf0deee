package app_test

import (
	"reflect"
	"testing"

	"kanbanlists/internal/app"
	"kanbanlists/internal/card"
)

func TestInitialLists_Shape(t *testing.T) {
	lists := app.InitialLists()
	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(lists))
	}

	want := []struct {
		listID  int
		name    string
		cardIDs []int
		texts   []string
	}{
		{1, "リスト１", []int{1, 2}, []string{"タスク１", "タスク2"}},
		{2, "リスト２", []int{3, 4}, []string{"タスク3", "タスク４"}},
	}

	for i, w := range want {
		l := lists[i]
		if l.ID() != w.listID {
			t.Errorf("list %d: id = %d, want %d", i, l.ID(), w.listID)
		}
		if l.Name != w.name {
			t.Errorf("list %d: name = %q, want %q", i, l.Name, w.name)
		}
		if l.CardCount() != len(w.cardIDs) {
			t.Fatalf("list %d: %d cards, want %d", i, l.CardCount(), len(w.cardIDs))
		}
		for j, c := range l.Cards {
			if c.ID() != w.cardIDs[j] {
				t.Errorf("list %d card %d: id = %d, want %d", i, j, c.ID(), w.cardIDs[j])
			}
			if c.Text != w.texts[j] {
				t.Errorf("list %d card %d: text = %q, want %q", i, j, c.Text, w.texts[j])
			}
		}
	}
}

func TestInitialLists_UniqueIDs(t *testing.T) {
	listIDs := make(map[int]struct{})
	cardIDs := make(map[int]struct{})
	for _, l := range app.InitialLists() {
		if _, dup := listIDs[l.ID()]; dup {
			t.Errorf("duplicate list id %d", l.ID())
		}
		listIDs[l.ID()] = struct{}{}
		for _, c := range l.Cards {
			if _, dup := cardIDs[c.ID()]; dup {
				t.Errorf("duplicate card id %d", c.ID())
			}
			cardIDs[c.ID()] = struct{}{}
		}
	}
	if len(cardIDs) != 4 {
		t.Fatalf("got %d distinct card ids, want 4", len(cardIDs))
	}
}

func TestInitialLists_RepeatedCallsEqual(t *testing.T) {
	a := app.InitialLists()
	b := app.InitialLists()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated calls differ:\n%#v\n%#v", a, b)
	}
}

func TestInitialLists_NoAliasing(t *testing.T) {
	first := app.InitialLists()
	first[0].Name = "renamed"
	first[0].Cards[0].Text = "edited"
	first[1].Cards[1] = card.New(99, "replaced")
	first[1].Cards = append(first[1].Cards, card.New(5, "extra"))

	second := app.InitialLists()
	if second[0].Name != "リスト１" {
		t.Errorf("list name leaked between calls: %q", second[0].Name)
	}
	if second[0].Cards[0].Text != "タスク１" {
		t.Errorf("card text leaked between calls: %q", second[0].Cards[0].Text)
	}
	if got := second[1].Cards[1].ID(); got != 4 {
		t.Errorf("card replacement leaked between calls: id %d", got)
	}
	if second[1].CardCount() != 2 {
		t.Errorf("appended card leaked between calls: %d cards", second[1].CardCount())
	}
}

func TestInitialBoard(t *testing.T) {
	b := app.InitialBoard()
	if len(b.Lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(b.Lists))
	}
	if b.CardCount() != 4 {
		t.Fatalf("got %d cards, want 4", b.CardCount())
	}
}
