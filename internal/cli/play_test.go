package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/hanoi/pkg/config"
	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/observability"
)

func newTestCLI(input string) (*CLI, *bytes.Buffer) {
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.In = strings.NewReader(input)
	c.Out = &out
	return c, &out
}

func lineConfig(disks int) config.Config {
	cfg := config.Default()
	cfg.Disks = disks
	cfg.Pause = 0
	cfg.Color = false
	cfg.Mode = config.ModeLine
	return cfg
}

func TestPlayLinesOptimalGame(t *testing.T) {
	c, out := newTestCLI("3\n0 2\n0 1\n2 1\n0 2\n1 0\n1 2\n0 2\n")

	if err := c.playLines(context.Background(), lineConfig(0)); err != nil {
		t.Fatalf("playLines() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{promptDisks, promptSource, promptDest, "Move: 0", "Move: 7", "You won in 7 steps!"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(got, "Invalid") {
		t.Errorf("optimal game should not produce rejections:\n%s", got)
	}
	if !strings.HasSuffix(got, "You won in 7 steps!\n") {
		t.Errorf("output should end with the win message, got tail %q", got[max(0, len(got)-40):])
	}
}

func TestPlayLinesRejectedMoves(t *testing.T) {
	// Two disks; a mix of bad input before the winning sequence.
	input := strings.Join([]string{
		"5 1",  // bad source
		"0 -1", // bad destination
		"1 2",  // empty source
		"x 1",  // not a number
		"0 1",  // ok
		"0 1",  // larger onto smaller
		"0 0",  // same tower
		"0 2",  // ok
		"1 2",  // ok, wins
	}, "\n")
	c, out := newTestCLI(input)

	if err := c.playLines(context.Background(), lineConfig(2)); err != nil {
		t.Fatalf("playLines() error = %v", err)
	}

	got := out.String()
	checks := []struct {
		msg   string
		count int
	}{
		{msgInvalidSource, 2},
		{msgInvalidDest, 1},
		{msgIllegalMove, 3},
		{"You won in 3 steps!", 1},
	}
	for _, chk := range checks {
		if n := strings.Count(got, chk.msg); n != chk.count {
			t.Errorf("%q appeared %d times, want %d", chk.msg, n, chk.count)
		}
	}
	if strings.Contains(got, "Move: 4") {
		t.Error("rejected moves must not advance the move counter")
	}
	if strings.Contains(got, promptDisks) {
		t.Error("disk prompt should be skipped when disks are configured")
	}
}

func TestPlayLinesInputEnds(t *testing.T) {
	c, _ := newTestCLI("0 1\n")

	err := c.playLines(context.Background(), lineConfig(2))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("playLines() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestPlayLinesBadDiskCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"zero", "0\n"},
		{"negative", "-3\n"},
		{"not a number", "many\n"},
		{"no input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(tt.input)
			err := c.playLines(context.Background(), lineConfig(0))
			if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
				t.Errorf("playLines() error = %v, want %s", err, errors.ErrCodeInvalidConfiguration)
			}
		})
	}
}

func TestPlayLinesCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	c := New(io.Discard, LogInfo)
	c.In = r
	c.Out = io.Discard

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.playLines(ctx, lineConfig(3))
	if err != context.DeadlineExceeded {
		t.Errorf("playLines() error = %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestPlayLinesEmitsHooks(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetGameHooks(rec)
	defer observability.Reset()

	c, _ := newTestCLI("2 0\n0 1\n")
	if err := c.playLines(context.Background(), lineConfig(1)); err != nil {
		t.Fatalf("playLines() error = %v", err)
	}

	if rec.started != 1 || rec.moves != 1 || rec.rejected != 1 || rec.won != 1 {
		t.Errorf("hooks = %+v, want one of each", *rec)
	}
}

func TestMoveMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"source index", &errors.TowerIndexError{Role: errors.RoleSource, Index: 4, Max: 3}, msgInvalidSource},
		{"destination index", &errors.TowerIndexError{Role: errors.RoleDestination, Index: 4, Max: 3}, msgInvalidDest},
		{"illegal move", errors.New(errors.ErrCodeIllegalMove, "tower 1 is empty"), msgIllegalMove},
		{"other", errors.New(errors.ErrCodeInternal, "boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := moveMessage(tt.err); got != tt.want {
				t.Errorf("moveMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveMode(t *testing.T) {
	var buf bytes.Buffer
	in := strings.NewReader("")

	tests := []struct {
		mode string
		want string
	}{
		{config.ModeLine, config.ModeLine},
		{config.ModeTUI, config.ModeTUI},
		{config.ModeAuto, config.ModeLine}, // buffers are not terminals
	}

	for _, tt := range tests {
		if got := resolveMode(tt.mode, in, &buf); got != tt.want {
			t.Errorf("resolveMode(%q) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestPlayCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, out := newTestCLI("0 2\n")
	root := c.RootCommand()
	root.SetArgs([]string{"play", "--mode", "line", "--disks", "1", "--pause", "0s", "--no-color"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("play command error = %v", err)
	}
	if !strings.Contains(out.String(), "You won in 1 steps!") {
		t.Errorf("play command output missing win message:\n%s", out.String())
	}
}

func TestPlayCommandInvalidFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, _ := newTestCLI("")
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"play", "--mode", "fancy"})

	err := root.ExecuteContext(context.Background())
	if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
		t.Errorf("play --mode fancy error = %v, want %s", err, errors.ErrCodeInvalidConfiguration)
	}
}

// recordingHooks counts game events.
type recordingHooks struct {
	observability.NoopGameHooks
	started, moves, rejected, won int
}

func (h *recordingHooks) OnGameStart(context.Context, string, int) { h.started++ }
func (h *recordingHooks) OnMove(context.Context, string, int, int, int) {
	h.moves++
}
func (h *recordingHooks) OnMoveRejected(context.Context, string, int, int, error) {
	h.rejected++
}
func (h *recordingHooks) OnGameWon(context.Context, string, int, time.Duration) { h.won++ }
