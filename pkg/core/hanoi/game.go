package hanoi

import (
	"fmt"

	"github.com/matzehuels/hanoi/pkg/errors"
)

const (
	// NumTowers is the number of towers in a game.
	NumTowers = 3

	// OriginTower is the tower that starts with every disk.
	OriginTower = 0
)

// Move is a request to move the top disk of tower From onto tower To.
type Move struct {
	From int
	To   int
}

// String returns the move as "from→to".
func (m Move) String() string {
	return fmt.Sprintf("%d→%d", m.From, m.To)
}

// Game is the state of a single puzzle: three towers and a move counter.
// A Game is not safe for concurrent use.
type Game struct {
	towers [NumTowers]*Tower
	disks  int
	moves  int
}

// New creates a game with disks disks stacked on the origin tower,
// largest at the bottom. It fails if disks is less than 1.
func New(disks int) (*Game, error) {
	if disks < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "disk count must be at least 1, got %d", disks)
	}
	g := &Game{disks: disks}
	for i := range g.towers {
		g.towers[i] = &Tower{}
	}
	for d := disks; d > 0; d-- {
		g.towers[OriginTower].Push(Disk(d))
	}
	return g, nil
}

// Disks returns the number of disks in play.
func (g *Game) Disks() int { return g.disks }

// Moves returns the number of accepted moves.
func (g *Game) Moves() int { return g.moves }

// Towers returns a snapshot of every tower's disks, bottom to top.
func (g *Game) Towers() [NumTowers][]Disk {
	var out [NumTowers][]Disk
	for i, t := range g.towers {
		out[i] = t.Disks()
	}
	return out
}

// IsWon reports whether any tower other than the origin is complete.
func (g *Game) IsWon() bool {
	for i := OriginTower + 1; i < NumTowers; i++ {
		if g.towers[i].IsComplete(g.disks) {
			return true
		}
	}
	return false
}

// ApplyMove moves the top disk of tower from onto tower to.
//
// The source index is validated before the destination; an out-of-range
// index yields a *errors.TowerIndexError. A move that breaks the stacking
// rule yields an ILLEGAL_MOVE error. Rejected moves change nothing;
// accepted moves increment the move counter.
func (g *Game) ApplyMove(from, to int) error {
	if !validIndex(from) {
		return &errors.TowerIndexError{Role: errors.RoleSource, Index: from, Max: NumTowers}
	}
	if !validIndex(to) {
		return &errors.TowerIndexError{Role: errors.RoleDestination, Index: to, Max: NumTowers}
	}

	src, dst := g.towers[from], g.towers[to]
	if !HasValidMove(src, dst) {
		return illegalMove(src, dst, from, to)
	}
	if err := MoveDisk(src, dst); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "apply move %d→%d", from, to)
	}
	g.moves++
	return nil
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	c := &Game{disks: g.disks, moves: g.moves}
	for i, t := range g.towers {
		c.towers[i] = &Tower{}
		for _, d := range t.Disks() {
			c.towers[i].Push(d)
		}
	}
	return c
}

func validIndex(i int) bool {
	return i >= 0 && i < NumTowers
}

func illegalMove(src, dst *Tower, from, to int) error {
	if src.Size() == 0 {
		return errors.New(errors.ErrCodeIllegalMove, "tower %d is empty", from)
	}
	s, _ := src.Peek()
	d, _ := dst.Peek()
	return errors.New(errors.ErrCodeIllegalMove, "cannot place disk %d from tower %d on disk %d of tower %d", s, from, d, to)
}
