package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigCommandDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, out := newTestCLI("")
	root := c.RootCommand()
	root.SetArgs([]string{"config"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config command error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"built-in defaults", "0 (ask)", "1s", "auto"} {
		if !strings.Contains(got, want) {
			t.Errorf("config output missing %q:\n%s", want, got)
		}
	}
}

func TestConfigCommandFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "hanoi", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("disks = 6\nmode = \"line\"\ncolor = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, out := newTestCLI("")
	root := c.RootCommand()
	root.SetArgs([]string{"config"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("config command error = %v", err)
	}

	got := out.String()
	for _, want := range []string{path, "6", "line", "false"} {
		if !strings.Contains(got, want) {
			t.Errorf("config output missing %q:\n%s", want, got)
		}
	}
}
