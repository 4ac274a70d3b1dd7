package game

import (
	"github.com/pkg/errors"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/event"
)

// Player is a seated participant. Two players are the same player iff their
// ids match; name, hand and connection state never enter the comparison,
// which is what seat lookup and removal rely on.
type Player struct {
	id        string
	name      string
	connected bool
	hand      *Hand
}

func NewPlayer(id, name string) *Player {
	return &Player{
		id:        id,
		name:      name,
		connected: true,
		hand:      NewHand(),
	}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Connected() bool {
	return p.connected
}

func (p *Player) SetConnected(connected bool) {
	p.connected = connected
}

// Hand returns the player's owned hand. The hand itself guards its content
// behind copying accessors.
func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) Equal(other *Player) bool {
	return other != nil && p.id == other.id
}

// DrawCard puts a drawn card into the hand. Passing an invalid (zero) card is
// a caller bug: the empty-deck case must be handled before calling this.
func (p *Player) DrawCard(c card.Card) error {
	if !c.Valid() {
		return errors.Wrapf(ErrInvalidCard, "player %s", p.name)
	}
	p.hand.Add(c)
	event.CardDrawn.Emit(event.CardDrawnPayload{
		PlayerName: p.name,
		Card:       c,
	})
	return nil
}

// PlayCard removes the card from the hand. It only enforces possession;
// whether the play is legal against the active color and value has to be
// checked before calling.
func (p *Player) PlayCard(c card.Card) error {
	if !p.hand.Remove(c) {
		return errors.Wrapf(ErrCardNotHeld, "player %s tried to play %s", p.name, c.Label())
	}
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: p.name,
		Card:       c,
	})
	return nil
}

// HasUno reports whether the player is down to exactly one card.
func (p *Player) HasUno() bool {
	return p.hand.Size() == 1
}

// HasEmptyHand reports the round-win condition.
func (p *Player) HasEmptyHand() bool {
	return p.hand.IsEmpty()
}

func (p *Player) HasCard(c card.Card) bool {
	for _, held := range p.hand.Cards() {
		if held.Equal(c) {
			return true
		}
	}
	return false
}
