package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/config"
)

// settings loads the config file and applies any flags the user set.
func (c *CLI) settings(cmd *cobra.Command, opts playOptions) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("disks") {
		cfg.Disks = opts.disks
	}
	if flags.Changed("pause") {
		cfg.Pause = config.Duration(opts.pause)
	}
	if flags.Changed("mode") {
		cfg.Mode = opts.mode
	}
	if flags.Changed("no-color") {
		cfg.Color = !opts.noColor
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	loggerFromContext(cmd.Context()).Debug("settings loaded", "path", cfg.Path, "disks", cfg.Disks, "mode", cfg.Mode)
	return cfg, nil
}

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}

			p := printer{w: c.Out, color: cfg.Color}
			source := cfg.Path
			if source == "" {
				source = "built-in defaults"
			}
			p.keyValue("source", source)
			disks := strconv.Itoa(cfg.Disks)
			if cfg.Disks == 0 {
				disks += " (ask)"
			}
			p.keyValue("disks", disks)
			p.keyValue("pause", cfg.Pause.Std().String())
			p.keyValue("mode", cfg.Mode)
			p.keyValue("color", fmt.Sprint(cfg.Color))
			return nil
		},
	}
}
