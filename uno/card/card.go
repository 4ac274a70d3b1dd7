package card

import (
	"fmt"

	"github.com/uno-online/server/uno/card/color"
)

// Card is a single physical card. ID disambiguates the two printed copies of
// the same color/value in a standard deck; equality compares all three fields.
// Cards are immutable once created.
type Card struct {
	ID    int
	Color color.Color
	Value Value
}

func New(id int, cardColor color.Color, value Value) Card {
	return Card{ID: id, Color: cardColor, Value: value}
}

// Valid reports whether the card carries a real color and value. The zero
// Card is invalid, which is how "no card" is told apart from a drawn one.
func (c Card) Valid() bool {
	return c.Color.Valid() && c.Value.Valid()
}

// IsPlayable is the canonical matching rule: black cards always match,
// otherwise either the color or the value has to equal the demanded one.
func (c Card) IsPlayable(activeColor color.Color, activeValue Value) bool {
	if c.Color == color.Black {
		return true
	}
	return c.Color == activeColor || c.Value == activeValue
}

// Points returns the scoring weight of the card when left in a losing hand.
func (c Card) Points() int {
	return c.Value.Points()
}

func (c Card) Equal(other Card) bool {
	return c == other
}

func (c Card) String() string {
	return c.Color.Paintf("%s %s", c.Color, c.Value)
}

// Label returns the unpainted name of the card, for logs and error messages.
func (c Card) Label() string {
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}
