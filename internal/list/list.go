package list

import (
	"encoding/json"

	"kanbanlists/internal/card"
)

// List is a named, ordered set of cards. Card order is display order.
type List struct {
	id    int
	Name  string
	Cards []card.Card
}

func New(id int, name string, cards ...card.Card) List {
	if cards == nil {
		cards = []card.Card{}
	}
	return List{id: id, Name: name, Cards: cards}
}

func (l List) ID() int {
	return l.id
}

func (l List) CardCount() int {
	return len(l.Cards)
}

// Clone returns a copy whose card slice does not share storage with l.
func (l List) Clone() List {
	cards := make([]card.Card, len(l.Cards))
	copy(cards, l.Cards)
	return List{id: l.id, Name: l.Name, Cards: cards}
}

type wire struct {
	ID    int         `json:"id" yaml:"id"`
	Name  string      `json:"name" yaml:"name"`
	Cards []card.Card `json:"cards" yaml:"cards"`
}

func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{ID: l.id, Name: l.Name, Cards: l.Cards})
}

func (l List) MarshalYAML() (interface{}, error) {
	return wire{ID: l.id, Name: l.Name, Cards: l.Cards}, nil
}
