package game2048

import (
	"math/rand"
	"time"
)

// Spawn4Prob is the probability that a spawned tile is a 4 instead of a 2.
const Spawn4Prob = 0.10

// Source supplies the randomness used for tile spawning.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles on a grid.
type Spawner struct {
	src Source
}

// NewSpawner creates a spawner drawing from src.
func NewSpawner(src Source) *Spawner {
	return &Spawner{src: src}
}

// NewSeededSpawner creates a spawner backed by math/rand.
// Seed 0 means seed from the current time.
func NewSeededSpawner(seed int64) *Spawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSpawner(rand.New(rand.NewSource(seed)))
}

// Spawn puts a 2 (90%) or a 4 (10%) in a uniformly chosen empty cell.
// A full grid is returned unchanged with ok == false.
func (s *Spawner) Spawn(g Grid) (out Grid, ok bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, false
	}

	cell := empty[s.src.Intn(len(empty))]
	value := 2
	if s.src.Float64() >= 1-Spawn4Prob {
		value = 4
	}

	g[cell.Row][cell.Col] = value
	return g, true
}

// NewBoard returns an empty grid seeded with two tiles.
func (s *Spawner) NewBoard() Grid {
	g := NewGrid()
	g, _ = s.Spawn(g)
	g, _ = s.Spawn(g)
	return g
}
