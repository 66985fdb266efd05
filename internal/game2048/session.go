package game2048

import "fmt"

// DefaultShareLink is appended to the share text when none is configured.
const DefaultShareLink = "https://github.com/vovakirdan/tui-2048"

// Status is the state of a session.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
)

// Outcome describes what a directional command did to a session.
type Outcome int

const (
	// OutcomeIgnored: the session is over and accepts no more moves.
	OutcomeIgnored Outcome = iota
	// OutcomeNoop: nothing could slide in that direction.
	OutcomeNoop
	// OutcomeMoved: tiles moved and a new tile was spawned.
	OutcomeMoved
	// OutcomeGameOver: tiles moved and no further move is possible.
	OutcomeGameOver
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNoop:
		return "noop"
	case OutcomeMoved:
		return "moved"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session holds the state of one game: the grid, the cumulative score and
// whether the game is over. A Session has a single owner and is not safe for
// concurrent use.
type Session struct {
	spawner *Spawner
	grid    Grid
	score   int
	status  Status
	moves   int
}

// NewSession starts a game with two random tiles.
func NewSession(sp *Spawner) *Session {
	s := &Session{spawner: sp}
	s.Restart()
	return s
}

// Restart discards the current game and starts a fresh one.
func (s *Session) Restart() {
	s.grid = s.spawner.NewBoard()
	s.score = 0
	s.moves = 0
	s.status = StatusPlaying
}

// Apply slides the board in dir. A move that changes nothing leaves the
// session untouched; an effective move spawns a tile, adds the merge score
// and checks whether any move is left.
func (s *Session) Apply(dir Direction) Outcome {
	if s.status == StatusGameOver {
		return OutcomeIgnored
	}

	res := Move(s.grid, dir)
	if res.Grid.Equal(s.grid) {
		return OutcomeNoop
	}

	s.grid, _ = s.spawner.Spawn(res.Grid)
	s.score += res.ScoreDelta
	s.moves++

	if !CanMove(s.grid) {
		s.status = StatusGameOver
		return OutcomeGameOver
	}
	return OutcomeMoved
}

// Grid returns a copy of the current board.
func (s *Session) Grid() Grid { return s.grid }

// Score returns the cumulative score.
func (s *Session) Score() int { return s.score }

// Status returns the session status.
func (s *Session) Status() Status { return s.status }

// GameOver reports whether the session reached the terminal state.
func (s *Session) GameOver() bool { return s.status == StatusGameOver }

// Moves returns the number of effective moves made.
func (s *Session) Moves() int { return s.moves }

// ShareText formats the message handed to a sharing collaborator when a
// game ends.
func ShareText(score int, link string) string {
	return fmt.Sprintf("I scored %d in 2048! %s", score, link)
}
