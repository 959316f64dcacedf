package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runConfigCLI executes a config subcommand against an explicit config
// path, without any content directory.
func runConfigCLI(t *testing.T, cfgPath string, args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()
	restore := snapshotCLIState()
	t.Cleanup(restore)

	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errBuf)
	rootCmd.SetContext(withIO(context.Background(), &bytes.Buffer{}, out, errBuf))

	prevEnvGet := envGet
	envGet = func(key string) string { return "" }
	t.Cleanup(func() { envGet = prevEnvGet })

	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--output", "text"}, args...))
	err := rootCmd.Execute()
	return out, errBuf, err
}

func TestConfigSetAndShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, errBuf, err := runConfigCLI(t, cfgPath, "config", "set", "menu_collection", "nav")
	if err != nil {
		t.Fatalf("set: %v (stderr: %s)", err, errBuf.String())
	}
	if !strings.Contains(out.String(), "menu_collection = nav") {
		t.Fatalf("expected confirmation, got %q", out.String())
	}

	out, errBuf, err = runConfigCLI(t, cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("show: %v (stderr: %s)", err, errBuf.String())
	}
	if !strings.Contains(out.String(), "menu_collection: nav") {
		t.Fatalf("expected stored value, got %q", out.String())
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	_, _, err := runConfigCLI(t, cfgPath, "config", "set", "mystery", "x")
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestConfigPath(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, errBuf, err := runConfigCLI(t, cfgPath, "config", "path")
	if err != nil {
		t.Fatalf("path: %v (stderr: %s)", err, errBuf.String())
	}
	if strings.TrimSpace(out.String()) != cfgPath {
		t.Fatalf("expected %q, got %q", cfgPath, out.String())
	}
}

func TestConfigCommandsSkipContentStore(t *testing.T) {
	// No content directory exists anywhere near this config; config
	// commands must still run.
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("content_dir: /does/not/exist\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, _, err := runConfigCLI(t, cfgPath, "config", "show"); err != nil {
		t.Fatalf("config show must not open the content store: %v", err)
	}
}
