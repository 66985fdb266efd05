package core

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/game2048"
)

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    game2048.Direction
		ok     bool
	}{
		{ActionUp, game2048.Up, true},
		{ActionDown, game2048.Down, true},
		{ActionLeft, game2048.Left, true},
		{ActionRight, game2048.Right, true},
		{ActionRestart, 0, false},
		{ActionNone, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.ok || (ok && dir != tc.dir) {
				t.Errorf("%s.Direction() = %v, %v; want %v, %v", tc.action, dir, ok, tc.dir, tc.ok)
			}
		})
	}
}
