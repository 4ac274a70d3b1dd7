package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-online/server/config"
	"github.com/uno-online/server/service"
	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

func testConfig() *config.Config {
	return &config.Config{
		MinPlayers:       2,
		MaxPlayers:       4,
		StartingHandSize: 7,
		CodeLength:       8,
	}
}

func TestCreateAndGet(t *testing.T) {
	cfg := testConfig()
	g := service.Create(cfg)
	defer service.Delete(g.ID())

	assert.Len(t, g.ID(), cfg.CodeLength)
	assert.Equal(t, game.StatusWaitingForPlayers, g.Status())
	assert.Equal(t, cfg.MaxPlayers, g.MaxPlayers())
	assert.Equal(t, 108, g.Deck().CardCount())

	assert.Same(t, g, service.Get(g.ID()))
	assert.Nil(t, service.Get("NOPE0000"))
}

func TestGamesListing(t *testing.T) {
	a := service.Create(testConfig())
	b := service.Create(testConfig())
	defer service.Delete(a.ID())
	defer service.Delete(b.ID())

	listed := service.Games()
	assert.Contains(t, listed, a)
	assert.Contains(t, listed, b)
}

func TestDelete(t *testing.T) {
	g := service.Create(testConfig())
	service.Delete(g.ID())

	assert.Nil(t, service.Get(g.ID()))
}

func TestJoin(t *testing.T) {
	t.Run("seats players until the game is full", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxPlayers = 2
		g := service.Create(cfg)
		defer service.Delete(g.ID())

		playerOne, err := service.Join(g.ID(), "Toto")
		require.NoError(t, err)
		playerTwo, err := service.Join(g.ID(), "Titi")
		require.NoError(t, err)

		assert.NotEqual(t, playerOne.ID(), playerTwo.ID())
		assert.Equal(t, 2, g.PlayerCount())

		_, err = service.Join(g.ID(), "Tata")
		require.ErrorIs(t, err, game.ErrGameFull)
	})

	t.Run("fails for an unknown code", func(t *testing.T) {
		_, err := service.Join("NOPE0000", "Toto")
		require.ErrorIs(t, err, service.ErrGameNotFound)
	})
}

func TestLeave(t *testing.T) {
	g := service.Create(testConfig())
	defer service.Delete(g.ID())

	player, err := service.Join(g.ID(), "Toto")
	require.NoError(t, err)

	assert.True(t, service.Leave(g.ID(), player.ID()))
	assert.Equal(t, 0, g.PlayerCount())

	assert.False(t, service.Leave(g.ID(), player.ID()))
	assert.False(t, service.Leave("NOPE0000", player.ID()))
}

func TestStart(t *testing.T) {
	t.Run("deals hands and flips the first discard", func(t *testing.T) {
		cfg := testConfig()
		g := service.Create(cfg)
		defer service.Delete(g.ID())

		_, err := service.Join(g.ID(), "Toto")
		require.NoError(t, err)
		_, err = service.Join(g.ID(), "Titi")
		require.NoError(t, err)

		require.NoError(t, service.Start(g.ID(), cfg))

		assert.Equal(t, game.StatusInProgress, g.Status())
		for _, p := range g.Players() {
			assert.Equal(t, cfg.StartingHandSize, p.Hand().Size())
		}

		top, ok := g.DiscardPile().TopCard()
		require.True(t, ok)
		assert.NotEqual(t, color.Black, top.Color)
		assert.Equal(t, top.Color, g.ActiveColor())
		assert.Equal(t, top.Value, g.ActiveValue())

		// Set-aside wild flips go back into the deck, so no card is lost.
		dealt := cfg.StartingHandSize*g.PlayerCount() + g.DiscardPile().Size()
		assert.Equal(t, 108-dealt, g.Deck().CardCount())
	})

	t.Run("requires the configured minimum of players", func(t *testing.T) {
		cfg := testConfig()
		g := service.Create(cfg)
		defer service.Delete(g.ID())

		_, err := service.Join(g.ID(), "Toto")
		require.NoError(t, err)

		require.ErrorIs(t, service.Start(g.ID(), cfg), service.ErrNotEnoughPlayers)
		assert.Equal(t, game.StatusWaitingForPlayers, g.Status())
	})

	t.Run("refuses a second start", func(t *testing.T) {
		cfg := testConfig()
		g := service.Create(cfg)
		defer service.Delete(g.ID())

		for _, name := range []string{"Toto", "Titi"} {
			_, err := service.Join(g.ID(), name)
			require.NoError(t, err)
		}
		require.NoError(t, service.Start(g.ID(), cfg))

		require.ErrorIs(t, service.Start(g.ID(), cfg), service.ErrAlreadyStarted)
	})

	t.Run("fails for an unknown code", func(t *testing.T) {
		require.ErrorIs(t, service.Start("NOPE0000", testConfig()), service.ErrGameNotFound)
	})
}

func TestReplenishDeck(t *testing.T) {
	g := game.NewGame("REPLENIS", game.NewDeck(), 4)
	g.DiscardPile().Add(card.New(1, color.Red, card.Five))
	g.DiscardPile().Add(card.New(2, color.Green, card.Skip))
	g.DiscardPile().Add(card.New(3, color.Blue, card.Zero))

	require.True(t, service.ReplenishDeck(g))

	assert.Equal(t, 2, g.Deck().CardCount())
	assert.Equal(t, 1, g.DiscardPile().Size())

	// Nothing left under the top card.
	assert.False(t, service.ReplenishDeck(g))
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := service.GenerateCode(8)
		require.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", r), "unexpected rune %q", r)
		}
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
