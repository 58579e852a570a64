package game

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFullDeck(t *testing.T) {
	deck := FullDeck()
	if len(deck) != NumCards {
		t.Fatalf("Expected %d cards, got %d", NumCards, len(deck))
	}
	if !deck.Distinct() {
		t.Errorf("Full deck has repeated cards")
	}
	for i, c := range deck {
		if err := c.Validate(); err != nil {
			t.Errorf("Card %d (%s) is invalid: %v", i, c, err)
		}
		if int(c.Key()) != i {
			t.Errorf("Card %s: expected key %d, got %d", c, i, c.Key())
		}
		back, err := CardFromKey(c.Key())
		if err != nil || back != c {
			t.Errorf("CardFromKey(%d) = %s, %v; want %s", c.Key(), back, err, c)
		}
	}
	if _, err := CardFromKey(NumCards); err == nil {
		t.Errorf("Expected error for key %d", NumCards)
	}
}

func TestDistinctInvalidCards(t *testing.T) {
	valid := Card{Count: 1, Shape: Oval, Fill: Empty, Color: Red}
	for _, deck := range []Deck{
		{Card{}},
		{valid, Card{Count: 3, Shape: Diamond, Fill: Hatched, Color: Color(7)}},
		{Card{Count: 200, Shape: Oval, Fill: Empty, Color: Red}},
	} {
		if deck.Distinct() {
			t.Errorf("Deck %v holds an invalid card, expected Distinct() to be false", deck)
		}
	}
	if !(Deck{}).Distinct() || !(Deck{valid}).Distinct() {
		t.Errorf("Expected empty and one-card decks to be distinct")
	}
}

func TestCardEquality(t *testing.T) {
	a := Card{Count: 2, Shape: Oval, Fill: Hatched, Color: Green}
	b := Card{Count: 2, Shape: Oval, Fill: Hatched, Color: Green}
	if a != b || a.Key() != b.Key() {
		t.Errorf("Expected %s to equal %s", a, b)
	}
	b.Color = Blue
	if a == b || a.Key() == b.Key() {
		t.Errorf("Expected %s to differ from %s", a, b)
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Count: 1, Shape: Oval, Fill: Empty, Color: Red}, "1 red empty oval"},
		{Card{Count: 2, Shape: Diamond, Fill: Hatched, Color: Blue}, "2 blue hatched diamonds"},
		{Card{Count: 3, Shape: Squiggle, Fill: Filled, Color: Green}, "3 green filled squiggles"},
	}
	for _, tc := range tests {
		if got := tc.card.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestCardJSON(t *testing.T) {
	card := Card{Count: 3, Shape: Squiggle, Fill: Hatched, Color: Blue}
	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"count":3,"shape":"squiggle","fill":"hatched","color":"blue"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var got Card
	if err := json.Unmarshal([]byte(`{"count":1,"shape":"oval","fill":"empty","color":"red"}`), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if want := (Card{Count: 1, Shape: Oval, Fill: Empty, Color: Red}); got != want {
		t.Errorf("Unmarshal = %s, want %s", got, want)
	}

	for _, bad := range []string{
		`{"count":4,"shape":"oval","fill":"empty","color":"red"}`,
		`{"count":0,"shape":"oval","fill":"empty","color":"red"}`,
		`{"count":1,"shape":"circle","fill":"empty","color":"red"}`,
		`{"count":1,"shape":"oval","fill":"dotted","color":"red"}`,
		`{"count":1,"shape":"oval","fill":"empty","color":"purple"}`,
	} {
		var c Card
		if err := json.Unmarshal([]byte(bad), &c); err == nil {
			t.Errorf("Expected error decoding %s, got card %s", bad, c)
		}
	}
}

func TestAttributeDomains(t *testing.T) {
	want := map[Attribute]string{
		AttrCount: "1 2 3",
		AttrShape: "squiggle oval diamond",
		AttrFill:  "empty filled hatched",
		AttrColor: "red green blue",
	}
	for _, attr := range Attributes {
		values := attr.Values()
		if len(values) != 3 {
			t.Errorf("Attribute %s: expected 3 values, got %d", attr, len(values))
		}
		if got := strings.Join(values, " "); got != want[attr] {
			t.Errorf("Attribute %s: values %q, want %q", attr, got, want[attr])
		}
		parsed, err := ParseAttribute(attr.String())
		if err != nil || parsed != attr {
			t.Errorf("ParseAttribute(%q) = %v, %v", attr.String(), parsed, err)
		}
	}
	if _, err := ParseAttribute("size"); err == nil {
		t.Errorf("Expected error parsing unknown attribute")
	}
}
