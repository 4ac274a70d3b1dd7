package game

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
)

// Hand is a player's card collection. Iteration order is insertion order,
// which fixes the order of PlayableCards results.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

// Remove takes out the first card equal to c, keeping the remaining order.
// It returns false and leaves the hand unchanged when the card is absent;
// turning that into a hard error is the caller's job.
func (h *Hand) Remove(c card.Card) bool {
	for i, held := range h.cards {
		if held.Equal(c) {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Cards returns a copy of the hand in insertion order.
func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Points sums the scoring weight of every held card, used to score losing
// hands at the end of a round.
func (h *Hand) Points() int {
	points := 0
	for _, c := range h.cards {
		points += c.Points()
	}
	return points
}

func (h *Hand) HasPlayableCard(activeColor color.Color, activeValue card.Value) bool {
	for _, c := range h.cards {
		if c.IsPlayable(activeColor, activeValue) {
			return true
		}
	}
	return false
}

// PlayableCards returns the held cards matching the demanded color or value,
// in hand order.
func (h *Hand) PlayableCards(activeColor color.Color, activeValue card.Value) []card.Card {
	playable := make([]card.Card, 0, len(h.cards))
	for _, c := range h.cards {
		if c.IsPlayable(activeColor, activeValue) {
			playable = append(playable, c)
		}
	}
	return playable
}

// CardByID returns the first held card with the given id. Ids are unique per
// deck, so at most one match is meaningful.
func (h *Hand) CardByID(id int) (card.Card, bool) {
	for _, c := range h.cards {
		if c.ID == id {
			return c, true
		}
	}
	return card.Card{}, false
}

// Clear empties the hand, used before redealing a new round.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}
