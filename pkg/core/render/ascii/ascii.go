package ascii

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/hanoi/pkg/core/hanoi"
)

const (
	pole = "|"
	disk = "-"
	base = "="
)

// RenderOption configures rendering.
type RenderOption func(*renderer)

type renderer struct {
	diskStyle func(d hanoi.Disk, row string) string
	baseStyle func(row string) string
}

// WithDiskStyle wraps every disk row in style, e.g. to colour it by size.
func WithDiskStyle(style func(d hanoi.Disk, row string) string) RenderOption {
	return func(r *renderer) { r.diskStyle = style }
}

// WithBaseStyle wraps every base rule in style.
func WithBaseStyle(style func(row string) string) RenderOption {
	return func(r *renderer) { r.baseStyle = style }
}

func newRenderer(opts ...RenderOption) renderer {
	r := renderer{
		diskStyle: func(_ hanoi.Disk, row string) string { return row },
		baseStyle: func(row string) string { return row },
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Render writes the move counter followed by every tower in index order.
func Render(w io.Writer, g *hanoi.Game, opts ...RenderOption) error {
	r := newRenderer(opts...)

	var b strings.Builder
	fmt.Fprintf(&b, "Move: %d\n", g.Moves())
	for i, tower := range g.Towers() {
		fmt.Fprintf(&b, "Tower %d:\n", i)
		for _, row := range r.towerRows(tower, g.Disks()) {
			b.WriteString(row)
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders g as Render does and returns the text.
func String(g *hanoi.Game, opts ...RenderOption) string {
	var b strings.Builder
	_ = Render(&b, g, opts...)
	return b.String()
}

// TowerRows returns the rows of one tower from top to bottom, ending with the
// base rule. disks holds the tower's disks bottom to top; n is the number of
// disks in play.
func TowerRows(disks []hanoi.Disk, n int, opts ...RenderOption) []string {
	r := newRenderer(opts...)
	return r.towerRows(disks, n)
}

func (r renderer) towerRows(disks []hanoi.Disk, n int) []string {
	rows := make([]string, 0, n+1)
	for i := 0; i < n-len(disks); i++ {
		rows = append(rows, EmptyRow(n))
	}
	for i := len(disks) - 1; i >= 0; i-- {
		rows = append(rows, r.diskStyle(disks[i], DiskRow(disks[i], n)))
	}
	return append(rows, r.baseStyle(strings.Repeat(base, 2*n+1)))
}

// DiskRow draws disk d centred in a row wide enough for n disks.
func DiskRow(d hanoi.Disk, n int) string {
	pad := strings.Repeat(" ", max(0, n-int(d)))
	bar := strings.Repeat(disk, int(d))
	return pad + bar + pole + bar + pad
}

// EmptyRow draws a bare pole slot in a row wide enough for n disks.
func EmptyRow(n int) string {
	pad := strings.Repeat(" ", n)
	return pad + pole + pad
}
