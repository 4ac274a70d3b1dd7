package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uno-online/server/uno/card/color"
)

func TestMains(t *testing.T) {
	mains := color.Mains()
	require.Len(t, mains, 4)
	assert.NotContains(t, mains, color.Black)
	for _, c := range mains {
		assert.True(t, c.Valid())
	}
}

func TestValid(t *testing.T) {
	assert.True(t, color.Red.Valid())
	assert.True(t, color.Black.Valid())
	assert.False(t, color.Color(0).Valid())
	assert.False(t, color.Color(6).Valid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "red", color.Red.String())
	assert.Equal(t, "yellow", color.Yellow.String())
	assert.Equal(t, "green", color.Green.String())
	assert.Equal(t, "blue", color.Blue.String())
	assert.Equal(t, "black", color.Black.String())
}

func TestByName(t *testing.T) {
	t.Run("resolves every color name", func(t *testing.T) {
		for _, c := range []color.Color{color.Red, color.Yellow, color.Green, color.Blue, color.Black} {
			resolved, err := color.ByName(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, resolved)
		}
	})

	t.Run("is case insensitive", func(t *testing.T) {
		resolved, err := color.ByName("GREEN")
		require.NoError(t, err)
		assert.Equal(t, color.Green, resolved)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := color.ByName("purple")
		require.Error(t, err)
	})
}
