package game

import "fmt"

// Status is the lifecycle of a game session. Transitions only move forward:
// WaitingForPlayers -> InProgress -> Finished.
type Status int

const (
	StatusWaitingForPlayers Status = iota + 1
	StatusInProgress
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusWaitingForPlayers:
		return "waiting_for_players"
	case StatusInProgress:
		return "in_progress"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("invalid status(%d)", int(s))
	}
}
