package hanoi

import (
	"slices"
	"testing"

	"github.com/matzehuels/hanoi/pkg/errors"
)

func towerOf(disks ...Disk) *Tower {
	t := &Tower{}
	for _, d := range disks {
		t.Push(d)
	}
	return t
}

func TestHasValidMove(t *testing.T) {
	tests := []struct {
		name string
		src  []Disk
		dst  []Disk
		want bool
	}{
		{"empty source, empty destination", nil, nil, false},
		{"empty source, occupied destination", nil, []Disk{3}, false},
		{"onto empty destination", []Disk{3}, nil, true},
		{"largest onto empty destination", []Disk{5, 4}, nil, true},
		{"smaller onto larger", []Disk{1}, []Disk{2}, true},
		{"larger onto smaller", []Disk{3}, []Disk{2}, false},
		{"equal sizes", []Disk{2}, []Disk{2}, false},
		{"compares tops only", []Disk{5, 1}, []Disk{4, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasValidMove(towerOf(tt.src...), towerOf(tt.dst...)); got != tt.want {
				t.Errorf("HasValidMove(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestMoveDisk(t *testing.T) {
	src := towerOf(3, 2, 1)
	dst := towerOf()

	if err := MoveDisk(src, dst); err != nil {
		t.Fatalf("MoveDisk() error = %v", err)
	}
	if !slices.Equal(src.Disks(), []Disk{3, 2}) {
		t.Errorf("source = %v, want [3 2]", src.Disks())
	}
	if !slices.Equal(dst.Disks(), []Disk{1}) {
		t.Errorf("destination = %v, want [1]", dst.Disks())
	}
}

func TestMoveDiskEmptySource(t *testing.T) {
	err := MoveDisk(towerOf(), towerOf(2))
	if !errors.Is(err, errors.ErrCodeEmptyStack) {
		t.Errorf("MoveDisk() from empty tower error = %v, want %s", err, errors.ErrCodeEmptyStack)
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name  string
		disks []Disk
		n     int
		want  bool
	}{
		{"full ordered", []Disk{3, 2, 1}, 3, true},
		{"single disk game", []Disk{1}, 1, true},
		{"missing a disk", []Disk{3, 2}, 3, false},
		{"empty", nil, 3, false},
		{"right size, wrong order", []Disk{3, 1, 2}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := towerOf(tt.disks...).IsComplete(tt.n); got != tt.want {
				t.Errorf("IsComplete(%d) on %v = %v, want %v", tt.n, tt.disks, got, tt.want)
			}
		})
	}
}
