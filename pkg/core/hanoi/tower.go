package hanoi

import (
	"fmt"

	"github.com/matzehuels/hanoi/pkg/core/stack"
)

// Disk is a disk identified by its size; larger values are larger disks.
type Disk int

// Tower is a peg holding a stack of disks.
// The zero value is an empty tower.
type Tower struct {
	stack.Stack[Disk]
}

// HasValidMove reports whether the top disk of src may be placed on dst.
// An empty source never has a move, an empty destination accepts any disk,
// and otherwise the source disk must be strictly smaller.
func HasValidMove(src, dst *Tower) bool {
	if src.Size() == 0 {
		return false
	}
	if dst.Size() == 0 {
		return true
	}
	s, _ := src.Peek()
	d, _ := dst.Peek()
	return s < d
}

// MoveDisk pops the top disk of src and pushes it onto dst.
// It does not check legality: callers must confirm HasValidMove first.
// An error is returned only if src is empty.
func MoveDisk(src, dst *Tower) error {
	d, err := src.Pop()
	if err != nil {
		return fmt.Errorf("move disk: %w", err)
	}
	dst.Push(d)
	return nil
}

// IsComplete reports whether the tower holds exactly disks disks, smallest on top.
func (t *Tower) IsComplete(disks int) bool {
	return t.Size() == disks && t.IsAscending()
}

// Disks returns the tower's disks from bottom to top.
func (t *Tower) Disks() []Disk {
	return t.Values()
}
