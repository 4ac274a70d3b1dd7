package card

import "fmt"

// Value is the closed face-value vocabulary of the game. Unlike Color, the
// zero value (Zero) is a legal card face.
type Value int

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

func (v Value) Valid() bool {
	return v >= Zero && v <= WildDrawFour
}

// IsAction reports whether the value is one of the non-number faces.
func (v Value) IsAction() bool {
	return v >= Skip && v <= WildDrawFour
}

// IsWild reports whether the value only exists on black cards.
func (v Value) IsWild() bool {
	return v == Wild || v == WildDrawFour
}

// Points returns the scoring weight of the value: number cards count their
// face, Skip/Reverse/DrawTwo count 20, Wild/WildDrawFour count 50.
func (v Value) Points() int {
	switch {
	case v >= Zero && v <= Nine:
		return int(v)
	case v == Skip || v == Reverse || v == DrawTwo:
		return 20
	case v.IsWild():
		return 50
	default:
		return 0
	}
}

func (v Value) String() string {
	if v >= Zero && v <= Nine {
		return fmt.Sprintf("%d", int(v))
	}

	switch v {
	case Skip:
		return "Skip"
	case Reverse:
		return "Reverse"
	case DrawTwo:
		return "DrawTwo"
	case Wild:
		return "Wild"
	case WildDrawFour:
		return "WildDrawFour"
	default:
		return fmt.Sprintf("invalid value(%d)", int(v))
	}
}
