// Package hanoi implements the rules and state of the Tower of Hanoi puzzle.
//
// # Overview
//
// A [Game] owns three towers. At the start the origin tower (index 0) holds
// every disk, largest at the bottom, and the other two towers are empty. The
// player moves one disk at a time; a disk may only be placed on an empty
// tower or on a strictly larger disk. The game is won once tower 1 or tower 2
// holds all disks in order. The origin tower never counts toward a win, so a
// fresh game is not already solved.
//
// # Core Types
//
//   - [Disk]: a disk, identified by its size 1..N
//   - [Tower]: a stack of disks with the legality check [HasValidMove]
//   - [Game]: three towers plus a counter of accepted moves
//   - [Move]: a source/destination pair
//
// # Moves
//
// [Game.ApplyMove] validates indices first, then legality, and only then
// mutates state. A rejected move leaves every tower and the move counter
// untouched:
//
//	g, _ := hanoi.New(3)
//	if err := g.ApplyMove(0, 2); err != nil {
//	    // errors.Is(err, errors.ErrCodeInvalidTowerIndex) or ErrCodeIllegalMove
//	}
//
// # Solving
//
// [Solve] produces the optimal 2^N-1 move sequence for a fresh game, and
// [Hint] computes the next optimal move from any reachable position.
package hanoi
