package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-online/server/uno/card"
	"github.com/uno-online/server/uno/card/color"
	"github.com/uno-online/server/uno/game"
)

func TestStandardDeckComposition(t *testing.T) {
	deck := game.NewStandardDeck()
	cards := deck.Cards()
	require.Len(t, cards, 108)

	countByColor := make(map[color.Color]int)
	countByValue := make(map[card.Value]int)
	seenIDs := make(map[int]bool)

	for _, c := range cards {
		countByColor[c.Color]++
		countByValue[c.Value]++
		assert.False(t, seenIDs[c.ID], "duplicate id %d", c.ID)
		seenIDs[c.ID] = true

		if c.Color == color.Black {
			assert.True(t, c.Value.IsWild(), "black card with value %s", c.Value)
		} else {
			assert.False(t, c.Value.IsWild(), "%s card with value %s", c.Color, c.Value)
		}
	}

	for _, mainColor := range color.Mains() {
		assert.Equal(t, 25, countByColor[mainColor], "cards of color %s", mainColor)
	}
	assert.Equal(t, 8, countByColor[color.Black])

	assert.Equal(t, 4, countByValue[card.Zero])
	for v := card.One; v <= card.DrawTwo; v++ {
		assert.Equal(t, 8, countByValue[v], "cards of value %s", v)
	}
	assert.Equal(t, 4, countByValue[card.Wild])
	assert.Equal(t, 4, countByValue[card.WildDrawFour])
}

func TestStandardDeckIDsAreSequential(t *testing.T) {
	cards := game.NewStandardDeck().Cards()

	for i, c := range cards {
		assert.Equal(t, i+1, c.ID)
	}
}
