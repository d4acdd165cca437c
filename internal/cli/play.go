package cli

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/hanoi/pkg/config"
	"github.com/matzehuels/hanoi/pkg/core/hanoi"
	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/observability"
)

// Player-facing messages.
const (
	msgInvalidSource = "Invalid source tower index!"
	msgInvalidDest   = "Invalid destination tower index!"
	msgIllegalMove   = "Invalid move between source and destination!"
	msgWon           = "You won in %d steps!"

	promptDisks  = "Enter the number of disks: "
	promptSource = "Enter a source tower: "
	promptDest   = "Enter a destination tower: "
)

// playOptions holds flag values for the play command.
type playOptions struct {
	disks   int
	pause   time.Duration
	mode    string
	noColor bool
}

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of Tower of Hanoi",
		Long: `Play a game of Tower of Hanoi.

All disks start on tower 0. Move them, one at a time, until tower 1 or
tower 2 holds the whole stack. A disk may only go on an empty tower or on
a larger disk.

In line mode each turn asks for a source and a destination tower (0-2).
In TUI mode press 0, 1 or 2 (or use the arrow keys and space) to pick the
source and then the destination; h shows a hint, u undoes, q quits.`,
		Example: `  hanoi play
  hanoi play --disks 4
  hanoi play --mode line --pause 0s < moves.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.settings(cmd, opts)
			if err != nil {
				return err
			}
			if resolveMode(cfg.Mode, c.In, c.Out) == config.ModeTUI {
				return c.playTUI(cmd.Context(), cfg)
			}
			return c.playLines(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVarP(&opts.disks, "disks", "n", 0, "number of disks (0 asks at startup)")
	cmd.Flags().DurationVar(&opts.pause, "pause", time.Second, "delay after a rejected move")
	cmd.Flags().StringVar(&opts.mode, "mode", config.ModeAuto, "interface: auto, line or tui")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

// resolveMode turns "auto" into "tui" when both ends are terminals.
func resolveMode(mode string, in io.Reader, out io.Writer) string {
	if mode != config.ModeAuto {
		return mode
	}
	if isTerminal(in) && isTerminal(out) {
		return config.ModeTUI
	}
	return config.ModeLine
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// =============================================================================
// Line Mode
// =============================================================================

// playLines runs the prompt-driven game loop.
func (c *CLI) playLines(ctx context.Context, cfg config.Config) error {
	in := newTokenReader(c.In)
	defer in.close()

	p := printer{w: c.Out, color: cfg.Color}

	disks := cfg.Disks
	if disks == 0 {
		n, err := askDisks(ctx, in, p)
		if err != nil {
			return err
		}
		disks = n
	}

	g, err := hanoi.New(disks)
	if err != nil {
		return err
	}

	s := &lineSession{
		game:  g,
		id:    newGameID(),
		in:    in,
		p:     p,
		pause: cfg.Pause.Std(),
	}
	return s.run(ctx)
}

// askDisks prompts for the disk count.
func askDisks(ctx context.Context, in *tokenReader, p printer) (int, error) {
	p.prompt(promptDisks)
	n, ok, err := in.nextInt(ctx)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return 0, errors.New(errors.ErrCodeInvalidConfiguration, "no disk count given")
		}
		return 0, err
	}
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidConfiguration, "disk count must be a whole number")
	}
	return n, nil
}

// lineSession is one game played over a line-oriented terminal.
type lineSession struct {
	game  *hanoi.Game
	id    string
	in    *tokenReader
	p     printer
	pause time.Duration
}

// run plays until the game is won, the input ends, or ctx is cancelled.
func (s *lineSession) run(ctx context.Context) error {
	hooks := observability.Game()
	prog := newProgress(loggerFromContext(ctx))
	hooks.OnGameStart(ctx, s.id, s.game.Disks())

	if err := s.render(); err != nil {
		return err
	}

	for !s.game.IsWon() {
		from, to, err := s.readTurn(ctx)
		if err != nil {
			return err
		}
		s.p.newline()

		if err := s.apply(ctx, from, to); err != nil {
			return err
		}
		if err := s.render(); err != nil {
			return err
		}
	}

	hooks.OnGameWon(ctx, s.id, s.game.Moves(), prog.elapsed())
	s.p.success(msgWon, s.game.Moves())
	return nil
}

// readTurn prompts for a source and a destination tower. A token that is not
// a number becomes index -1 so it is rejected like any out-of-range index.
func (s *lineSession) readTurn(ctx context.Context) (from, to int, err error) {
	s.p.prompt(promptSource)
	from, err = s.readIndex(ctx)
	if err != nil {
		return 0, 0, err
	}
	s.p.prompt(promptDest)
	to, err = s.readIndex(ctx)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

func (s *lineSession) readIndex(ctx context.Context) (int, error) {
	n, ok, err := s.in.nextInt(ctx)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return 0, errors.New(errors.ErrCodeInvalidInput, "input ended before the game was won")
		}
		return 0, err
	}
	if !ok {
		return -1, nil
	}
	return n, nil
}

// apply attempts a move. Player mistakes are reported and swallowed; only
// internal failures are returned.
func (s *lineSession) apply(ctx context.Context, from, to int) error {
	hooks := observability.Game()

	err := s.game.ApplyMove(from, to)
	if err == nil {
		hooks.OnMove(ctx, s.id, from, to, s.game.Moves())
		return nil
	}
	if !isPlayerError(err) {
		return err
	}

	hooks.OnMoveRejected(ctx, s.id, from, to, err)
	s.p.failure("%s", moveMessage(err))
	s.p.newline()
	return s.wait(ctx)
}

func (s *lineSession) render() error {
	if err := s.p.game(s.game); err != nil {
		return err
	}
	s.p.newline()
	return nil
}

// wait pauses so a rejection message can be read before the next board.
func (s *lineSession) wait(ctx context.Context) error {
	return sleepCtx(ctx, s.pause)
}

// isPlayerError reports whether err is a rejected move the player can retry.
func isPlayerError(err error) bool {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidTowerIndex, errors.ErrCodeIllegalMove:
		return true
	}
	return false
}

// moveMessage maps a rejected move to the message shown to the player.
func moveMessage(err error) string {
	var idx *errors.TowerIndexError
	if stderrors.As(err, &idx) {
		if idx.Role == errors.RoleDestination {
			return msgInvalidDest
		}
		return msgInvalidSource
	}
	if errors.Is(err, errors.ErrCodeIllegalMove) {
		return msgIllegalMove
	}
	return errors.UserMessage(err)
}
