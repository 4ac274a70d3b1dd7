package game

import (
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/event"
)

// Game is the authoritative state of one session: seating order, turn
// direction and index, the draw deck, the discard pile and the demanded
// color/value. It validates joins and advances turns; resolving special-card
// effects is the hosting layer's job, driven through ReverseDirection,
// AdvanceTurn and the players' draw/play operations.
//
// A Game is not safe for concurrent mutation. The hosting server serializes
// all writes to a session, one logical turn at a time.
type Game struct {
	id                 string
	status             Status
	direction          int
	players            []*Player
	currentPlayerIndex int
	deck               *Deck
	pile               *Pile
	maxPlayers         int
	activeColor        color.Color
	activeValue        card.Value
}

// NewGame creates a waiting session. The deck is owned by the game from here
// on; the id comes from an outside supplier and only has to be unique among
// active sessions.
func NewGame(id string, deck *Deck, maxPlayers int) *Game {
	if deck == nil {
		deck = NewDeck()
	}
	return &Game{
		id:         id,
		status:     StatusWaitingForPlayers,
		direction:  1,
		players:    make([]*Player, 0, maxPlayers),
		deck:       deck,
		pile:       NewPile(),
		maxPlayers: maxPlayers,
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Status() Status {
	return g.status
}

// SetStatus moves the session lifecycle. Progression is forward-only by
// contract: WaitingForPlayers -> InProgress -> Finished.
func (g *Game) SetStatus(status Status) {
	g.status = status
}

// Direction is +1 for clockwise play, -1 for counter-clockwise.
func (g *Game) Direction() int {
	return g.direction
}

// ReverseDirection flips the turn direction. Applying it twice restores the
// previous direction.
func (g *Game) ReverseDirection() {
	g.direction *= -1
	event.DirectionReversed.Emit(event.DirectionReversedPayload{
		GameID:    g.id,
		Direction: g.direction,
	})
}

func (g *Game) CurrentPlayerIndex() int {
	return g.currentPlayerIndex
}

// AdvanceTurn moves the turn index one seat along the current direction,
// wrapping on both ends. Call it exactly once per turn, after any win check;
// calling it with no players seated is a caller bug.
func (g *Game) AdvanceTurn() {
	playerCount := len(g.players)
	g.currentPlayerIndex = (g.currentPlayerIndex + g.direction + playerCount) % playerCount
}

// AddPlayer seats a player at the end of the joining order. It fails when the
// player is nil, when the game already left the waiting phase, or when every
// seat is taken.
func (g *Game) AddPlayer(p *Player) error {
	if p == nil {
		return ErrNilPlayer
	}
	if g.status != StatusWaitingForPlayers {
		return ErrGameStarted
	}
	if len(g.players) >= g.maxPlayers {
		return ErrGameFull
	}

	g.players = append(g.players, p)
	event.PlayerJoined.Emit(event.PlayerJoinedPayload{
		GameID:     g.id,
		PlayerName: p.Name(),
	})
	return nil
}

// RemovePlayer unseats a player, matching by id. Seats are only released
// while the game is waiting; afterwards it is a no-op returning false.
func (g *Game) RemovePlayer(p *Player) bool {
	if g.status != StatusWaitingForPlayers || p == nil {
		return false
	}
	for i, seated := range g.players {
		if seated.Equal(p) {
			g.players = append(g.players[:i], g.players[i+1:]...)
			return true
		}
	}
	return false
}

// FindPlayerByID returns the seated player with the given id, or nil.
func (g *Game) FindPlayerByID(id string) *Player {
	for _, p := range g.players {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil when nobody is
// seated.
func (g *Game) CurrentPlayer() *Player {
	if len(g.players) == 0 {
		return nil
	}
	return g.players[g.currentPlayerIndex]
}

// IsWinner reports whether the current player has emptied their hand. It
// checks the *current* seat, so it is only meaningful right after that
// player's play and before AdvanceTurn runs for the turn.
func (g *Game) IsWinner() bool {
	current := g.CurrentPlayer()
	return current != nil && current.HasEmptyHand()
}

func (g *Game) PlayerCount() int {
	return len(g.players)
}

// Players returns a copy of the seating order.
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) DiscardPile() *Pile {
	return g.pile
}

func (g *Game) MaxPlayers() int {
	return g.maxPlayers
}

// ActiveColor is the color a played card has to match. After a wild it is
// whatever the player announced, which may differ from the top card's color.
func (g *Game) ActiveColor() color.Color {
	return g.activeColor
}

func (g *Game) SetActiveColor(c color.Color) {
	g.activeColor = c
}

func (g *Game) ActiveValue() card.Value {
	return g.activeValue
}

func (g *Game) SetActiveValue(v card.Value) {
	g.activeValue = v
}

func (g *Game) Equal(other *Game) bool {
	return other != nil && g.id == other.id
}
