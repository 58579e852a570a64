package game

import (
	"encoding/json"
	"fmt"
)

// Card is one playing card. Cards are plain values: two cards are the same
// card iff all four attributes are equal, so == can be used directly.
type Card struct {
	Count Count `json:"count"`
	Shape Shape `json:"shape"`
	Fill  Fill  `json:"fill"`
	Color Color `json:"color"`
}

// Key is the canonical encoding of a card, in [0, NumCards).
type Key uint8

// NumCards is the number of distinct cards: 3 values for each of 4 attributes.
const NumCards = 81

// Key encodes the card's attribute indices as a base-3 number.
// It is only defined for valid cards, see Validate.
func (c Card) Key() Key {
	return Key((int(c.Count)-1)*27 + int(c.Shape)*9 + int(c.Fill)*3 + int(c.Color))
}

// CardFromKey is the inverse of Card.Key.
func CardFromKey(k Key) (Card, error) {
	if k >= NumCards {
		return Card{}, fmt.Errorf("card key %d out of range [0, %d)", k, NumCards)
	}
	i := int(k)
	return Card{
		Count: Counts[i/27],
		Shape: Shapes[(i/9)%3],
		Fill:  Fills[(i/3)%3],
		Color: Colors[i%3],
	}, nil
}

// Validate checks that every attribute holds a value from its domain.
func (c Card) Validate() error {
	switch {
	case !c.Count.valid():
		return fmt.Errorf("invalid count %d", c.Count)
	case !c.Shape.valid():
		return fmt.Errorf("invalid shape %d", c.Shape)
	case !c.Fill.valid():
		return fmt.Errorf("invalid fill %d", c.Fill)
	case !c.Color.valid():
		return fmt.Errorf("invalid color %d", c.Color)
	}
	return nil
}

// Value returns the index, within the attribute's domain, of the card's value.
func (c Card) Value(a Attribute) int {
	switch a {
	case AttrCount:
		return int(c.Count) - 1
	case AttrShape:
		return int(c.Shape)
	case AttrFill:
		return int(c.Fill)
	case AttrColor:
		return int(c.Color)
	}
	panic(fmt.Sprintf("unknown attribute %d", int(a)))
}

// With returns a copy of the card with attribute a set to the domain value at index i.
func (c Card) With(a Attribute, i int) Card {
	switch a {
	case AttrCount:
		c.Count = Counts[i]
	case AttrShape:
		c.Shape = Shapes[i]
	case AttrFill:
		c.Fill = Fills[i]
	case AttrColor:
		c.Color = Colors[i]
	default:
		panic(fmt.Sprintf("unknown attribute %d", int(a)))
	}
	return c
}

// String renders the card the way a player would read it, e.g. "2 red hatched ovals".
func (c Card) String() string {
	shape := c.Shape.String()
	if c.Count > 1 {
		shape += "s"
	}
	return fmt.Sprintf("%d %s %s %s", c.Count, c.Color, c.Fill, shape)
}

// UnmarshalJSON decodes a card and rejects attribute values outside their domain.
func (c *Card) UnmarshalJSON(data []byte) error {
	type plain Card
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := Card(p).Validate(); err != nil {
		return fmt.Errorf("failed to decode card: %w", err)
	}
	*c = Card(p)
	return nil
}
