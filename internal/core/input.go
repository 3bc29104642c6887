package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRoll           // Space, Enter - roll for the active human
	ActionPause          // P - pause/unpause
	ActionSave           // S - write the save slot
	ActionLoad           // L - read the save slot
	ActionNewGame        // N - start over with the same players
	ActionConfirm        // Enter - confirm in setup
	ActionBack           // Esc - leave the current screen
	ActionUp             // Up, K
	ActionDown           // Down, J
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRoll:
		return "Roll"
	case ActionPause:
		return "Pause"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionNewGame:
		return "NewGame"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
