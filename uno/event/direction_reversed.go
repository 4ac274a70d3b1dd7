package event

var DirectionReversed = &directionReversedEmitter{}

type DirectionReversedPayload struct {
	GameID    string
	Direction int
}

type DirectionReversedListener interface {
	OnDirectionReversed(DirectionReversedPayload)
}

type directionReversedEmitter struct {
	listeners []DirectionReversedListener
}

func (e *directionReversedEmitter) AddListener(listener DirectionReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *directionReversedEmitter) Emit(payload DirectionReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnDirectionReversed(payload)
	}
}
