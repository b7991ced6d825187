package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Defaults used when neither the config file nor the environment sets a value.
const (
	DefaultTop  = 3
	DefaultClip = 80
)

// Environment variables that override the config file.
const (
	EnvTop  = "CODEX_SKILLS_TOP"
	EnvClip = "CODEX_SKILLS_CLIP"
	EnvDir  = "CODEX_SKILLS_DIR"
)

// localConfigNames are looked up in the working directory, in order.
var localConfigNames = []string{".codex-skills.toml", "codex-skills.toml"}

// Config is the in-memory representation of a codex-skills TOML file.
// Zero values mean "not set".
type Config struct {
	DefaultTop int    `toml:"default_top"`
	ClipLength int    `toml:"clip_length"`
	SkillsDir  string `toml:"skills_dir"`

	// Path is the file the config was read from, empty when none was found.
	Path string `toml:"-"`
}

// ConfigDir returns the per-user config directory:
// $XDG_CONFIG_HOME/codex-skills, or ~/.config/codex-skills.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "codex-skills"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "codex-skills"), nil
}

// ConfigPath returns the absolute path to the per-user config.toml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// candidatePaths lists config locations in lookup order.
func candidatePaths(workDir string) []string {
	var paths []string
	for _, name := range localConfigNames {
		paths = append(paths, filepath.Join(workDir, name))
	}
	if p, err := ConfigPath(); err == nil {
		paths = append(paths, p)
	}
	return paths
}

// Load reads the first usable config file found from workDir, then applies
// environment overrides. A missing file is not an error. A file that cannot
// be read or parsed is skipped in favour of the next candidate, and a bad
// override value is ignored. Load always returns a usable Config; the error,
// when non-nil, lists everything that was skipped.
func Load(workDir string) (*Config, error) {
	cfg := &Config{}
	var problems []error
	for _, p := range candidatePaths(workDir) {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			problems = append(problems, fmt.Errorf("cannot read config %s: %w", p, err))
			continue
		}
		var fileCfg Config
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			problems = append(problems, fmt.Errorf("invalid TOML in %s: %w", p, err))
			continue
		}
		cfg = &fileCfg
		cfg.Path = p
		break
	}

	problems = append(problems, cfg.applyEnv()...)

	dir, err := ExpandPath(cfg.SkillsDir)
	if err != nil {
		problems = append(problems, err)
	} else {
		cfg.SkillsDir = dir
	}
	return cfg, errors.Join(problems...)
}

// applyEnv overrides fields from the environment. Keys that cannot be read or
// parsed leave their field untouched.
func (c *Config) applyEnv() []error {
	var problems []error
	ints := []struct {
		key string
		dst *int
	}{
		{EnvTop, &c.DefaultTop},
		{EnvClip, &c.ClipLength},
	}
	for _, e := range ints {
		v, err := GetConfigValue(e.key)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			problems = append(problems, fmt.Errorf("invalid %s %q: %w", e.key, v, err))
			continue
		}
		*e.dst = n
	}

	dir, err := GetConfigValue(EnvDir)
	if err != nil {
		problems = append(problems, err)
	} else if dir != "" {
		c.SkillsDir = dir
	}
	return problems
}

// EffectiveTop is the configured pick count, DefaultTop when unset.
func (c *Config) EffectiveTop() int {
	if c == nil || c.DefaultTop <= 0 {
		return DefaultTop
	}
	return c.DefaultTop
}

// EffectiveClip is the configured list clip width, DefaultClip when unset.
func (c *Config) EffectiveClip() int {
	if c == nil || c.ClipLength <= 0 {
		return DefaultClip
	}
	return c.ClipLength
}
