// Package ascii renders Tower of Hanoi games as plain-text art.
//
// Each tower is drawn as a column of rows, one per disk slot, followed by a
// base rule. With N disks in play every row is 2N+1 characters wide:
//
//	   |        empty slot
//	  -|-       disk 1
//	 --|--      disk 2
//	---|---     disk 3
//	=======     base
//
// A disk of size d is d dashes either side of the centre pipe, padded with
// N-d spaces. Empty slots fill the space above the top disk so every tower
// has N rows.
//
// [Render] produces the full game (move counter plus each tower in index
// order); [TowerRows] returns a single tower's rows so callers can lay
// towers out side by side. [WithDiskStyle] lets terminal front-ends colour
// disks without changing the layout.
package ascii
