// Package config loads the optional hotreload.toml project file: compiler
// flags and watch timing, the handful of knobs this system exposes beyond
// the DSL source file itself. Absence of the file is not an error — every
// field has a sane default. Only the compiler settings reach the build
// (through CXXFlags); the [watch] values are decoded and exposed here, but
// the watcher does not read them: it uses its own fixed 75ms debounce and
// fsnotify events rather than polling.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const fileName = "hotreload.toml"

// Config is the decoded project file, with defaults already applied.
type Config struct {
	Path string

	CXXFlags        []string      `toml:"-"`
	IncludeDirs     []string      `toml:"-"`
	LibDirs         []string      `toml:"-"`
	WatchPollMillis int           `toml:"-"`
	DebounceMillis  int           `toml:"-"`
}

type fileFormat struct {
	Compiler compilerConfig `toml:"compiler"`
	Watch    watchConfig    `toml:"watch"`
}

type compilerConfig struct {
	Flags       []string `toml:"flags"`
	IncludeDirs []string `toml:"include_dirs"`
	LibDirs     []string `toml:"lib_dirs"`
}

type watchConfig struct {
	PollMillis     int `toml:"poll_ms"`
	DebounceMillis int `toml:"debounce_ms"`
}

const (
	defaultWatchPollMillis = 200
	defaultDebounceMillis  = 75
)

// Default returns the zero-config baseline: no extra flags, a 200ms poll
// and a 75ms debounce, matching Watcher's own debounceInterval constant.
func Default() Config {
	return Config{
		WatchPollMillis: defaultWatchPollMillis,
		DebounceMillis:  defaultDebounceMillis,
	}
}

// Load searches startDir and its ancestors for hotreload.toml (mirroring
// the teacher's project-root search), returning Default() untouched when
// none is found.
func Load(startDir string) (Config, error) {
	path, ok, err := find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}

	var f fileFormat
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	cfg := Default()
	cfg.Path = path
	cfg.CXXFlags = f.Compiler.Flags
	for _, d := range f.Compiler.IncludeDirs {
		cfg.CXXFlags = append(cfg.CXXFlags, "-I"+d)
	}
	for _, d := range f.Compiler.LibDirs {
		cfg.CXXFlags = append(cfg.CXXFlags, "-L"+d)
	}
	cfg.IncludeDirs = f.Compiler.IncludeDirs
	cfg.LibDirs = f.Compiler.LibDirs
	if f.Watch.PollMillis > 0 {
		cfg.WatchPollMillis = f.Watch.PollMillis
	}
	if f.Watch.DebounceMillis > 0 {
		cfg.DebounceMillis = f.Watch.DebounceMillis
	}
	return cfg, nil
}

// PollInterval and DebounceInterval convert the decoded millisecond fields
// into time.Duration for callers that want them directly.
func (c Config) PollInterval() time.Duration { return time.Duration(c.WatchPollMillis) * time.Millisecond }
func (c Config) DebounceInterval() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

func find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
