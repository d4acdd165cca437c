package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/hanoi/pkg/errors"
)

func TestRunSolve(t *testing.T) {
	c, out := newTestCLI("")

	err := c.runSolve(context.Background(), solveOptions{disks: 3, to: 2, noColor: true})
	if err != nil {
		t.Fatalf("runSolve() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Solved in 7 steps!") {
		t.Errorf("output missing solved message:\n%s", got)
	}
	if n := strings.Count(got, "Move: "); n != 8 {
		t.Errorf("rendered %d boards, want 8 (start plus 7 moves)", n)
	}
}

func TestRunSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		opts solveOptions
		code errors.Code
	}{
		{"too many disks", solveOptions{disks: 21, to: 2}, errors.ErrCodeInvalidConfiguration},
		{"no disks", solveOptions{disks: 0, to: 2}, errors.ErrCodeInvalidConfiguration},
		{"origin as target", solveOptions{disks: 3, to: 0}, errors.ErrCodeInvalidInput},
		{"bad target", solveOptions{disks: 3, to: 5}, errors.ErrCodeInvalidTowerIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI("")
			if err := c.runSolve(context.Background(), tt.opts); !errors.Is(err, tt.code) {
				t.Errorf("runSolve() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRunSolveCancelled(t *testing.T) {
	c, _ := newTestCLI("")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.runSolve(ctx, solveOptions{disks: 3, to: 2, pause: time.Hour, noColor: true})
	if err != context.Canceled {
		t.Errorf("runSolve() error = %v, want %v", err, context.Canceled)
	}
}

func TestSolveCommandUsesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hanoi.yaml")
	if err := os.WriteFile(path, []byte("disks: 2\npause: 0s\ncolor: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, out := newTestCLI("")
	root := c.RootCommand()
	root.SetErr(io.Discard)
	root.SetArgs([]string{"solve", "--config", path, "--to", "1"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("solve command error = %v", err)
	}
	if !strings.Contains(out.String(), "Solved in 3 steps!") {
		t.Errorf("solve should use 2 disks from config:\n%s", out.String())
	}
}
