package game

import (
	"sync"

	"github.com/uno-online/server/uno/card"
)

// Pile is the discard pile. The top is the most recently added card.
//
// Add performs no legality check; playability is decided upstream against the
// game's active color and value.
type Pile struct {
	mu    sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 108)}
}

func (p *Pile) Add(c card.Card) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = append(p.cards, c)
}

// TopCard returns the visible card. The second result is false only when the
// pile is empty.
func (p *Pile) TopCard() (card.Card, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// ExtractAllButTopCard removes and returns every card below the top one,
// preserving their order, and leaves the pile holding only the former top.
// On a pile of zero or one cards it returns nothing and changes nothing.
// The extracted cards are what the caller reshuffles back into the deck.
func (p *Pile) ExtractAllButTopCard() []card.Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.cards) <= 1 {
		return []card.Card{}
	}

	top := p.cards[len(p.cards)-1]
	extracted := make([]card.Card, len(p.cards)-1)
	copy(extracted, p.cards[:len(p.cards)-1])

	p.cards = p.cards[:0]
	p.cards = append(p.cards, top)

	return extracted
}

func (p *Pile) IsEmpty() bool {
	return p.Size() == 0
}

func (p *Pile) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cards)
}

// Cards returns a copy of the pile content, oldest first.
func (p *Pile) Cards() []card.Card {
	p.mu.Lock()
	defer p.mu.Unlock()
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}
