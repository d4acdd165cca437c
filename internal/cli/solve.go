package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/config"
	"github.com/matzehuels/hanoi/pkg/core/hanoi"
)

// solveOptions holds flag values for the solve command.
type solveOptions struct {
	disks   int
	to      int
	pause   time.Duration
	noColor bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Watch the optimal solution",
		Long: fmt.Sprintf(`Play the optimal solution of 2^N-1 moves on a fresh game, drawing the
board after every move. At most %d disks are supported.`, hanoi.MaxSolveDisks),
		Example: `  hanoi solve --disks 4
  hanoi solve --disks 3 --to 1 --pause 0s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("disks") && cfg.Disks > 0 {
				opts.disks = cfg.Disks
			}
			if !flags.Changed("pause") {
				opts.pause = cfg.Pause.Std()
			}
			if !flags.Changed("no-color") {
				opts.noColor = !cfg.Color
			}
			return c.runSolve(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.disks, "disks", "n", defaultSolveDisks, "number of disks")
	cmd.Flags().IntVar(&opts.to, "to", hanoi.NumTowers-1, "destination tower (1 or 2)")
	cmd.Flags().DurationVar(&opts.pause, "pause", time.Second, "delay between moves")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

// runSolve animates the optimal solution.
func (c *CLI) runSolve(ctx context.Context, opts solveOptions) error {
	logger := loggerFromContext(ctx)
	p := printer{w: c.Out, color: !opts.noColor}

	moves, err := hanoi.Solve(opts.disks, hanoi.OriginTower, opts.to)
	if err != nil {
		return err
	}
	g, err := hanoi.New(opts.disks)
	if err != nil {
		return err
	}
	logger.Debug("solving", "disks", opts.disks, "to", opts.to, "moves", len(moves))

	prog := newProgress(logger)
	if err := p.game(g); err != nil {
		return err
	}
	p.newline()

	for _, m := range moves {
		if err := sleepCtx(ctx, opts.pause); err != nil {
			return err
		}
		if err := g.ApplyMove(m.From, m.To); err != nil {
			return err
		}
		if err := p.game(g); err != nil {
			return err
		}
		p.newline()
	}

	p.success("Solved in %d steps!", g.Moves())
	prog.done(fmt.Sprintf("Solved %d disks", opts.disks))
	return nil
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
