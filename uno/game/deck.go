package game

import (
	"math/rand"
	"sync"

	"github.com/uno-online/server/uno/card"
)

// Deck is the draw pile. The top of the deck is the last element.
//
// Only Draw removes cards. Drawing from an empty deck is an expected outcome,
// not an error: the caller is responsible for reconstituting the deck from the
// discard pile (extract, refill, shuffle) and retrying.
type Deck struct {
	mu    sync.Mutex
	cards []card.Card
}

func NewDeck() *Deck {
	return &Deck{cards: make([]card.Card, 0, 108)}
}

// NewDeckFrom builds a deck over a copy of the given cards, so later
// mutations of the input slice do not leak into the deck.
func NewDeckFrom(cards []card.Card) *Deck {
	owned := make([]card.Card, len(cards))
	copy(owned, cards)
	return &Deck{cards: owned}
}

// Draw removes and returns the top card. The second result is false when the
// deck is empty.
func (d *Deck) Draw() (card.Card, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Refill appends cards to the deck. An empty or nil input is refused and
// leaves the deck untouched; the false return is a no-op signal, not an error.
func (d *Deck) Refill(cards []card.Card) bool {
	if len(cards) == 0 {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cards = append(d.cards, cards...)
	return true
}

// Shuffle randomizes the deck in place with a uniform permutation.
func (d *Deck) Shuffle() {
	d.mu.Lock()
	defer d.mu.Unlock()
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) CardCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cards)
}

func (d *Deck) IsEmpty() bool {
	return d.CardCount() == 0
}

// Cards returns a copy of the deck content, bottom first.
func (d *Deck) Cards() []card.Card {
	d.mu.Lock()
	defer d.mu.Unlock()
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
