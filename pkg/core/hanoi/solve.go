package hanoi

import (
	"github.com/matzehuels/hanoi/pkg/errors"
)

// MaxSolveDisks bounds Solve, whose output grows as 2^disks.
const MaxSolveDisks = 20

// Solve returns the optimal sequence of 2^disks-1 moves that transfers a
// full stack of disks from tower from to tower to.
func Solve(disks, from, to int) ([]Move, error) {
	if disks < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "disk count must be at least 1, got %d", disks)
	}
	if disks > MaxSolveDisks {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "cannot solve more than %d disks, got %d", MaxSolveDisks, disks)
	}
	if !validIndex(from) {
		return nil, &errors.TowerIndexError{Role: errors.RoleSource, Index: from, Max: NumTowers}
	}
	if !validIndex(to) {
		return nil, &errors.TowerIndexError{Role: errors.RoleDestination, Index: to, Max: NumTowers}
	}
	if from == to {
		return nil, errors.New(errors.ErrCodeInvalidInput, "source and destination are both tower %d", from)
	}

	moves := make([]Move, 0, 1<<disks-1)
	var solve func(n, from, to, via int)
	solve = func(n, from, to, via int) {
		if n == 0 {
			return
		}
		solve(n-1, from, via, to)
		moves = append(moves, Move{From: from, To: to})
		solve(n-1, via, to, from)
	}
	solve(disks, from, to, spare(from, to))
	return moves, nil
}

// Hint returns the next move of the shortest solution from the current
// position. The target is the non-origin tower holding the largest disk, or
// the last tower if the largest disk is still on the origin. It returns false
// when the game is already won.
func Hint(g *Game) (Move, bool) {
	if g.IsWon() {
		return Move{}, false
	}

	// pos[d] is the tower holding disk d.
	pos := make([]int, g.disks+1)
	for i, t := range g.towers {
		for _, d := range t.Disks() {
			pos[d] = i
		}
	}

	target := NumTowers - 1
	if p := pos[g.disks]; p != OriginTower {
		target = p
	}
	return nextMove(pos, g.disks, target)
}

// nextMove finds the first move that gathers disks 1..k onto target.
func nextMove(pos []int, k, target int) (Move, bool) {
	for ; k >= 1; k-- {
		if pos[k] == target {
			continue
		}
		via := spare(pos[k], target)
		if m, ok := nextMove(pos, k-1, via); ok {
			return m, true
		}
		return Move{From: pos[k], To: target}, true
	}
	return Move{}, false
}

// spare returns the tower that is neither a nor b.
func spare(a, b int) int {
	return NumTowers*(NumTowers-1)/2 - a - b
}
