package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"hotreload/internal/config"
)

func TestLoadReturnsDefaultsWhenFileAbsent(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "" {
		t.Fatalf("expected no path when hotreload.toml is absent, got %q", cfg.Path)
	}
	if cfg.WatchPollMillis == 0 || cfg.DebounceMillis == 0 {
		t.Fatal("expected non-zero defaults")
	}
}

func TestLoadParsesCompilerAndWatchSections(t *testing.T) {
	dir := t.TempDir()
	toml := `
[compiler]
flags = ["-O2"]
include_dirs = ["/opt/include"]
lib_dirs = ["/opt/lib"]

[watch]
poll_ms = 500
debounce_ms = 100
`
	if err := os.WriteFile(filepath.Join(dir, "hotreload.toml"), []byte(toml), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WatchPollMillis != 500 || cfg.DebounceMillis != 100 {
		t.Fatalf("expected overridden watch timings, got %+v", cfg)
	}
	wantFlags := []string{"-O2", "-I/opt/include", "-L/opt/lib"}
	if len(cfg.CXXFlags) != len(wantFlags) {
		t.Fatalf("expected flags %v, got %v", wantFlags, cfg.CXXFlags)
	}
	for i, f := range wantFlags {
		if cfg.CXXFlags[i] != f {
			t.Fatalf("flag %d: expected %q, got %q", i, f, cfg.CXXFlags[i])
		}
	}
}

func TestLoadSearchesAncestorDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "hotreload.toml"), []byte("[watch]\npoll_ms = 999\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	cfg, err := config.Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WatchPollMillis != 999 {
		t.Fatalf("expected to find ancestor hotreload.toml, got %+v", cfg)
	}
}
