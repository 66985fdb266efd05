package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		Seed:      42,
		ShareLink: "https://example.com",
	}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"wasd", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"vim", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, core.ActionDown},
		{"restart", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, core.ActionHelp},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %s, want %s", tc.msg.String(), got, tc.want)
			}
		})
	}
}

// expectMove checks that a command applied dir the way the rules say.
func expectMove(t *testing.T, before game2048.Grid, beforeScore int, s *game2048.Session, dir game2048.Direction) {
	t.Helper()
	res := game2048.Move(before, dir)
	if res.Grid.Equal(before) {
		if s.Grid() != before || s.Score() != beforeScore {
			t.Errorf("%s: blocked move changed the session", dir)
		}
		return
	}
	if s.Score() != beforeScore+res.ScoreDelta {
		t.Errorf("%s: score = %d, want %d", dir, s.Score(), beforeScore+res.ScoreDelta)
	}
	if s.Grid().TileCount() != res.Grid.TileCount()+1 {
		t.Errorf("%s: expected exactly one spawned tile", dir)
	}
}

func TestKeyboardMoves(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	s := m.Session()

	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyUp, tea.KeyRight, tea.KeyDown} {
		before, score := s.Grid(), s.Score()
		updated, cmd := m.Update(tea.KeyMsg{Type: k})
		m = updated.(Model)
		if cmd != nil {
			t.Errorf("move key %v returned a command", k)
		}
		dir, _ := m.keys.MapKey(tea.KeyMsg{Type: k}).Direction()
		expectMove(t, before, score, s, dir)
	}
}

func TestUnboundKeyIsIgnored(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	before := m.Session().Grid()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = updated.(Model)
	if m.Session().Grid() != before || m.Session().Moves() != 0 {
		t.Error("unbound key should not change the session")
	}
}

func TestButtonClickMoves(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	s := m.Session()

	for _, action := range buttonOrder {
		r := m.layout.buttons[action]
		cx, cy := r.Center()
		before, score := s.Grid(), s.Score()

		updated, _ := m.Update(tea.MouseMsg{
			X:      cx,
			Y:      cy,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		m = updated.(Model)

		dir, _ := action.Direction()
		expectMove(t, before, score, s, dir)
	}
}

func TestClickOutsideButtonsIsIgnored(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	before := m.Session().Grid()

	msgs := []tea.MouseMsg{
		{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		// Right clicks and releases on a button do nothing.
		{X: m.layout.buttons[core.ActionLeft].X + 1, Y: m.layout.buttons[core.ActionLeft].Y + 1,
			Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: m.layout.buttons[core.ActionLeft].X + 1, Y: m.layout.buttons[core.ActionLeft].Y + 1,
			Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	}
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	if m.Session().Grid() != before {
		t.Error("clicks outside the buttons should not move tiles")
	}
}

func TestRestartKey(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyUp, tea.KeyRight, tea.KeyDown, tea.KeyLeft} {
		updated, _ := m.Update(tea.KeyMsg{Type: k})
		m = updated.(Model)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)

	s := m.Session()
	if s.Score() != 0 || s.Moves() != 0 || s.Grid().TileCount() != 2 {
		t.Errorf("restart should start a new game, got score=%d moves=%d tiles=%d",
			s.Score(), s.Moves(), s.Grid().TileCount())
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHelpToggleKeepsRoomForHelp(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	if got := m.screen.Height(); got != 24-shortHelpLines {
		t.Errorf("screen height = %d, want %d", got, 24-shortHelpLines)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(Model)
	if !m.help.ShowAll {
		t.Error("? should show the full help")
	}
	if got := m.screen.Height(); got != 24-fullHelpLines {
		t.Errorf("screen height with full help = %d, want %d", got, 24-fullHelpLines)
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	before := m.Session().Grid()

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	if m.Session().Grid() != before {
		t.Error("resizing should not reset the game")
	}
	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, want 100", m.screen.Width())
	}
}

func TestViewShowsBoardAndScore(t *testing.T) {
	m := NewModel(testConfig(), nil, nil)
	m = m.WithRenderer(NewRenderer(nil))

	view := m.View()
	for _, want := range []string{"2048", "Score: 0", "┌", "↑", "↓"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW = 20
	cfg.ScreenH = 10
	m := NewModel(cfg, nil, nil)

	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show a resize hint")
	}
}

func TestGameOverSharesOnce(t *testing.T) {
	var shared []string
	m := NewModel(testConfig(), nil, func(text string) {
		shared = append(shared, text)
	})

	// Play until the board locks up; 42 is deterministic.
	keys := []tea.KeyType{tea.KeyLeft, tea.KeyDown, tea.KeyRight, tea.KeyUp}
	for i := 0; i < 20000 && !m.Session().GameOver(); i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: keys[i%len(keys)]})
		m = updated.(Model)
	}
	if !m.Session().GameOver() {
		t.Fatal("expected the game to end")
	}

	// Commands after game over are ignored.
	frozen := m.Session().Grid()
	for _, k := range keys {
		updated, _ := m.Update(tea.KeyMsg{Type: k})
		m = updated.(Model)
	}
	if m.Session().Grid() != frozen {
		t.Error("moves after game over must be ignored")
	}

	want := game2048.ShareText(m.Session().Score(), "https://example.com")
	if len(shared) != 1 || shared[0] != want {
		t.Fatalf("shared = %q, want [%q]", shared, want)
	}

	view := m.View()
	if !strings.Contains(view, "GAME OVER") || !strings.Contains(view, want) {
		t.Error("game over view should show the overlay and the share text")
	}
}
