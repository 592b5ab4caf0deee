package card_test

import (
	"encoding/json"
	"testing"

	"kanbanlists/internal/card"
)

func TestNew(t *testing.T) {
	c := card.New(4, "タスク４")
	if c.ID() != 4 {
		t.Fatalf("ID = %d, want 4", c.ID())
	}
	if !c.HasText() {
		t.Fatal("HasText = false, want true")
	}
	if card.New(5, "").HasText() {
		t.Fatal("HasText = true for empty text")
	}
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(card.New(1, "write tests"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"id":1,"text":"write tests"}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
