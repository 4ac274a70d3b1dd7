package game

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// NewStandardDeck builds the canonical 108-card deck, unshuffled.
//
// Per playable color: one Zero, two of each One..Nine, Skip, Reverse and
// DrawTwo, giving 25 cards and 100 in total. The remaining 8 are 4 Wild and
// 4 WildDrawFour, the only black cards. Ids run 1..108 in creation order.
func NewStandardDeck() *Deck {
	cards := make([]card.Card, 0, 108)
	id := 1

	for _, mainColor := range color.Mains() {
		cards = append(cards, card.New(id, mainColor, card.Zero))
		id++

		for value := card.One; value <= card.DrawTwo; value++ {
			for i := 0; i < 2; i++ {
				cards = append(cards, card.New(id, mainColor, value))
				id++
			}
		}
	}

	for i := 0; i < 4; i++ {
		cards = append(cards, card.New(id, color.Black, card.Wild))
		id++
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, card.New(id, color.Black, card.WildDrawFour))
		id++
	}

	return NewDeckFrom(cards)
}
