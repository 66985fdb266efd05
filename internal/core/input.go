package core

import "github.com/vovakirdan/tui-2048/internal/game2048"

// Action represents a semantic command, abstracted from physical key presses
// and pointer clicks.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K, ↑ button
	ActionDown           // Down arrow, S, J, ↓ button
	ActionLeft           // Left arrow, A, H, ← button
	ActionRight          // Right arrow, D, L, → button
	ActionRestart        // R key
	ActionHelp           // ? key
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the move direction for a directional action.
func (a Action) Direction() (game2048.Direction, bool) {
	switch a {
	case ActionUp:
		return game2048.Up, true
	case ActionDown:
		return game2048.Down, true
	case ActionLeft:
		return game2048.Left, true
	case ActionRight:
		return game2048.Right, true
	default:
		return 0, false
	}
}
