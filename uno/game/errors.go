package game

import "github.com/pkg/errors"

// Precondition violations. These signal caller bugs or illegal requests and
// are wrapped with context at the call site. Expected negative outcomes
// (empty deck, absent card, unknown id) never produce errors; they are
// reported through comma-ok results instead.
var (
	ErrNilPlayer   = errors.New("no player to add")
	ErrGameStarted = errors.New("cannot join: game already in progress")
	ErrGameFull    = errors.New("cannot join: the waiting room is full")
	ErrInvalidCard = errors.New("cannot draw an invalid card")
	ErrCardNotHeld = errors.New("card is not in hand")
)
