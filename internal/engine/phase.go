package engine

// Phase is the state of the turn state machine.
type Phase int

const (
	PhaseConfiguring Phase = iota
	PhaseWaitingRoll
	PhaseRollingDice
	PhaseMoving
	PhaseResolvingLink
	PhaseCheckingWin
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "Configuring"
	case PhaseWaitingRoll:
		return "WaitingRoll"
	case PhaseRollingDice:
		return "RollingDice"
	case PhaseMoving:
		return "Moving"
	case PhaseResolvingLink:
		return "ResolvingLink"
	case PhaseCheckingWin:
		return "CheckingWin"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Active reports whether a session is in progress and can be paused.
func (p Phase) Active() bool {
	switch p {
	case PhaseWaitingRoll, PhaseRollingDice, PhaseMoving, PhaseResolvingLink, PhaseCheckingWin:
		return true
	}
	return false
}
