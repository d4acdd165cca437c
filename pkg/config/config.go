// Package config loads hanoi settings from a TOML or YAML file.
//
// The default location follows the XDG convention:
// $XDG_CONFIG_HOME/hanoi/config.toml, falling back to
// ~/.config/hanoi/config.toml. A missing default file is not an error; the
// built-in defaults apply.
//
// Example config.toml:
//
//	disks = 5        # 0 asks at startup
//	pause = "500ms"  # delay after a rejected move
//	mode  = "auto"   # auto, line or tui
//	color = true
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hanoi/pkg/errors"
)

// appName names the config directory.
const appName = "hanoi"

// Play modes.
const (
	ModeAuto = "auto"
	ModeLine = "line"
	ModeTUI  = "tui"
)

// Config holds user settings.
type Config struct {
	Disks int      `toml:"disks" yaml:"disks"`
	Pause Duration `toml:"pause" yaml:"pause"`
	Mode  string   `toml:"mode" yaml:"mode"`
	Color bool     `toml:"color" yaml:"color"`

	// Path is the file the settings were read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Disks: 0,
		Pause: Duration(time.Second),
		Mode:  ModeAuto,
		Color: true,
	}
}

// Duration is a time.Duration written as a string such as "1s" or "250ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads settings from path. An empty path means the default location,
// where a missing file yields Default(). An explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "read config %s", path)
	}

	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "parse config %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes data in the given format ("toml" or "yaml") on top of the
// defaults and validates the result.
func Parse(data []byte, format string) (Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Disks < 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "disks must be 0 (ask) or positive, got %d", c.Disks)
	}
	if c.Pause < 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "pause must not be negative, got %s", c.Pause.Std())
	}
	switch c.Mode {
	case ModeAuto, ModeLine, ModeTUI:
	default:
		return errors.New(errors.ErrCodeInvalidConfiguration, "mode must be one of %s, %s, %s; got %q", ModeAuto, ModeLine, ModeTUI, c.Mode)
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}
