// Package service is the in-memory session registry a hosting server
// consults: it creates games under unique join codes, seats players and
// performs the lobby-side transitions (start, leave, teardown). Everything
// rule-related is delegated to the engine in uno/game.
package service

import (
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/uno-online/server/config"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

var games = hashmap.New()

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrNotEnoughPlayers = errors.New("not enough players to start")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrDeckExhausted    = errors.New("deck exhausted while dealing")
)

// Create registers a new waiting game under a freshly generated unique join
// code, backed by a shuffled standard deck.
func Create(cfg *config.Config) *game.Game {
	if cfg == nil {
		cfg = config.Default()
	}

	for {
		code := GenerateCode(cfg.CodeLength)
		if _, exists := games.Get(code); exists {
			continue
		}

		deck := game.NewStandardDeck()
		deck.Shuffle()
		g := game.NewGame(code, deck, cfg.MaxPlayers)
		games.Set(code, g)

		logrus.WithFields(logrus.Fields{
			"game":       code,
			"maxPlayers": cfg.MaxPlayers,
		}).Info("game created")
		return g
	}
}

// Get returns the registered game for a join code, or nil.
func Get(code string) *game.Game {
	if v, ok := games.Get(code); ok {
		return v.(*game.Game)
	}
	return nil
}

// Games lists every registered game, ordered by join code.
func Games() []*game.Game {
	list := make([]*game.Game, 0)
	games.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*game.Game))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID() < list[j].ID()
	})
	return list
}

// Delete drops a game from the registry.
func Delete(code string) {
	games.Del(code)
	logrus.WithField("game", code).Info("game deleted")
}

// Join seats a new player, identified by a fresh uuid, in the given game.
// Capacity and phase checks happen inside the engine.
func Join(code, name string) (*game.Player, error) {
	g := Get(code)
	if g == nil {
		return nil, errors.Wrapf(ErrGameNotFound, "code %s", code)
	}

	p := game.NewPlayer(uuid.NewString(), name)
	if err := g.AddPlayer(p); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"game":   code,
		"player": name,
	}).Info("player joined")
	return p, nil
}

// Leave unseats a player while the game is still waiting. It returns false
// when the game or the player is unknown, or the game already started.
func Leave(code, playerID string) bool {
	g := Get(code)
	if g == nil {
		return false
	}
	p := g.FindPlayerByID(playerID)
	if p == nil {
		return false
	}

	removed := g.RemovePlayer(p)
	if removed {
		logrus.WithFields(logrus.Fields{
			"game":   code,
			"player": p.Name(),
		}).Info("player left")
	}
	return removed
}

// Start moves a waiting game into progress: it deals the starting hands,
// flips the first discard and sets the active color and value from it.
// A wild first flip is set aside and reshuffled into the deck, so the engine
// never starts on a black active color.
func Start(code string, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}
	g := Get(code)
	if g == nil {
		return errors.Wrapf(ErrGameNotFound, "code %s", code)
	}
	if g.Status() != game.StatusWaitingForPlayers {
		return errors.Wrapf(ErrAlreadyStarted, "game %s is %s", code, g.Status())
	}
	if g.PlayerCount() < cfg.MinPlayers {
		return errors.Wrapf(ErrNotEnoughPlayers, "game %s has %d of %d", code, g.PlayerCount(), cfg.MinPlayers)
	}

	for _, p := range g.Players() {
		for i := 0; i < cfg.StartingHandSize; i++ {
			c, ok := g.Deck().Draw()
			if !ok {
				return errors.Wrapf(ErrDeckExhausted, "game %s", code)
			}
			if err := p.DrawCard(c); err != nil {
				return err
			}
		}
	}

	if err := flipFirstCard(g); err != nil {
		return err
	}

	g.SetStatus(game.StatusInProgress)
	logrus.WithFields(logrus.Fields{
		"game":    code,
		"players": g.PlayerCount(),
	}).Info("game started")
	return nil
}

func flipFirstCard(g *game.Game) error {
	var setAside []card.Card
	for {
		c, ok := g.Deck().Draw()
		if !ok {
			return errors.Wrapf(ErrDeckExhausted, "game %s", g.ID())
		}
		if c.Color == color.Black {
			setAside = append(setAside, c)
			continue
		}

		g.DiscardPile().Add(c)
		g.SetActiveColor(c.Color)
		g.SetActiveValue(c.Value)
		break
	}

	if g.Deck().Refill(setAside) {
		g.Deck().Shuffle()
	}
	return nil
}

// ReplenishDeck performs the documented deck-exhaustion recovery: everything
// under the discard top goes back into the deck, which is then reshuffled.
// It returns false when the discard pile has nothing to give.
func ReplenishDeck(g *game.Game) bool {
	extracted := g.DiscardPile().ExtractAllButTopCard()
	if !g.Deck().Refill(extracted) {
		return false
	}
	g.Deck().Shuffle()
	logrus.WithFields(logrus.Fields{
		"game":  g.ID(),
		"cards": len(extracted),
	}).Info("deck replenished from discard pile")
	return true
}
