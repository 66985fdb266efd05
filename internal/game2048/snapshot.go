package game2048

// Snapshot is the display view of a session: everything a rendering surface
// needs and nothing it could mutate.
type Snapshot struct {
	Cells   []int  `json:"cells"` // Size*Size values, row-major, 0 = empty
	Size    int    `json:"size"`
	Score   int    `json:"score"`
	Status  Status `json:"status"`
	MaxTile int    `json:"max_tile"`
	Moves   int    `json:"moves"`
	Share   string `json:"share,omitempty"` // Set only once the game is over
}

// Snapshot captures the current session state. link is used to build the
// share text when the game is over.
func (s *Session) Snapshot(link string) Snapshot {
	snap := Snapshot{
		Cells:   s.grid.Flatten(),
		Size:    Size,
		Score:   s.score,
		Status:  s.status,
		MaxTile: s.grid.MaxTile(),
		Moves:   s.moves,
	}
	if s.status == StatusGameOver {
		snap.Share = ShareText(s.score, link)
	}
	return snap
}
