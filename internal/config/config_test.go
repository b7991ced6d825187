package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, p, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, DefaultTop, cfg.EffectiveTop())
	assert.Equal(t, DefaultClip, cfg.EffectiveClip())
	assert.Empty(t, cfg.SkillsDir)
}

func TestLoad_DiscoveryOrder(t *testing.T) {
	userDir := isolate(t)
	work := t.TempDir()

	writeFile(t, filepath.Join(userDir, "config.toml"), "default_top = 9\n")
	cfg, err := Load(work)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.EffectiveTop())
	assert.Equal(t, filepath.Join(userDir, "config.toml"), cfg.Path)

	writeFile(t, filepath.Join(work, "codex-skills.toml"), "default_top = 4\n")
	cfg, err = Load(work)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.EffectiveTop())

	writeFile(t, filepath.Join(work, ".codex-skills.toml"), "default_top = 2\nclip_length = 40\nskills_dir = \"team-skills\"\n")
	cfg, err = Load(work)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.EffectiveTop())
	assert.Equal(t, 40, cfg.EffectiveClip())
	assert.Equal(t, "team-skills", cfg.SkillsDir)
	assert.Equal(t, filepath.Join(work, ".codex-skills.toml"), cfg.Path)
}

func TestLoad_InvalidTOMLFallsThroughToNextFile(t *testing.T) {
	userDir := isolate(t)
	work := t.TempDir()
	bad := filepath.Join(work, ".codex-skills.toml")
	writeFile(t, bad, "default_top = = 3\n")
	writeFile(t, filepath.Join(userDir, "config.toml"), "default_top = 6\n")

	cfg, err := Load(work)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	require.NotNil(t, cfg)
	assert.Equal(t, 6, cfg.EffectiveTop())
	assert.Equal(t, filepath.Join(userDir, "config.toml"), cfg.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	writeFile(t, filepath.Join(work, ".codex-skills.toml"), "default_top = 2\nclip_length = 40\n")

	t.Setenv(EnvTop, "7")
	t.Setenv(EnvDir, "/srv/skills")

	cfg, err := Load(work)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.EffectiveTop())
	assert.Equal(t, 40, cfg.EffectiveClip())
	assert.Equal(t, "/srv/skills", cfg.SkillsDir)
}

func TestLoad_DotEnvOverrides(t *testing.T) {
	userDir := isolate(t)
	writeDotEnv(t, userDir, EnvClip+"=120\n")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.EffectiveClip())
}

func TestLoad_BadEnvNumberKeepsOtherSettings(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	writeFile(t, filepath.Join(work, ".codex-skills.toml"), "default_top = 2\nclip_length = 40\nskills_dir = \"team-skills\"\n")
	t.Setenv(EnvClip, "wide")

	cfg, err := Load(work)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvClip)
	require.NotNil(t, cfg)
	assert.Equal(t, 2, cfg.EffectiveTop())
	assert.Equal(t, 40, cfg.EffectiveClip())
	assert.Equal(t, "team-skills", cfg.SkillsDir)
}

func TestLoad_ExpandsHomeInSkillsDir(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDir, "~/skills")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "skills"), cfg.SkillsDir)
}

func TestEffectiveValues_NilAndNonPositive(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, DefaultTop, nilCfg.EffectiveTop())
	assert.Equal(t, DefaultClip, nilCfg.EffectiveClip())

	cfg := &Config{DefaultTop: -1, ClipLength: 0}
	assert.Equal(t, DefaultTop, cfg.EffectiveTop())
	assert.Equal(t, DefaultClip, cfg.EffectiveClip())
}

func TestConfigDir_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "codex-skills"), dir)
}
