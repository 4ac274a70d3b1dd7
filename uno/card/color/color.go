package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is the closed color vocabulary of the game. The zero value is invalid.
type Color int

const (
	Red Color = iota + 1
	Yellow
	Green
	Blue
	// Black marks the wild cards. It is never an active color picked by the
	// deck factory for number or action cards.
	Black
)

var names = map[Color]string{
	Red:    "red",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Black:  "black",
}

var paintFunctions = map[Color]func(format string, args ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Black:  color.New(color.FgHiWhite, color.Bold).SprintfFunc(),
}

// Mains returns the four playable colors, excluding Black.
func Mains() []Color {
	return []Color{Red, Yellow, Green, Blue}
}

func (c Color) Valid() bool {
	return c >= Red && c <= Black
}

func (c Color) String() string {
	name, ok := names[c]
	if !ok {
		return fmt.Sprintf("invalid color(%d)", int(c))
	}
	return name
}

// Paint returns text wrapped in this color's ANSI escape codes.
func (c Color) Paint(text string) string {
	paint, ok := paintFunctions[c]
	if !ok {
		return text
	}
	return paint(text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	return c.Paint(fmt.Sprintf(format, args...))
}

// ByName resolves a color from its lowercase name, e.g. the color a player
// announces after playing a wild card.
func ByName(name string) (Color, error) {
	for c, n := range names {
		if n == strings.ToLower(name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid color '%s'", name)
}
