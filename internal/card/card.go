package card

import "encoding/json"

// Card is a single piece of text owned by a list. Its id is fixed by New.
type Card struct {
	id   int
	Text string
}

func New(id int, text string) Card {
	return Card{id: id, Text: text}
}

func (c Card) ID() int {
	return c.id
}

func (c Card) HasText() bool {
	return c.Text != ""
}

// wire is the serialised shape of a Card.
type wire struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{ID: c.id, Text: c.Text})
}

func (c Card) MarshalYAML() (interface{}, error) {
	return wire{ID: c.id, Text: c.Text}, nil
}
