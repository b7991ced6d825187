package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kamusis/codex-skills/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagSkillsDir string
	flagDebug     bool
)

// Shared state set up by setup before any command runs.
var (
	logger = slog.New(slog.DiscardHandler)
	cfg    = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:          "codex-skills",
	Short:        "Route tasks to the right skill playbook",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `codex-skills ranks a local library of skill playbooks (folders holding a
SKILL.md with YAML frontmatter) against a task description so agents only use
approved playbooks. When the skills directory is empty the bundled skills are
used instead.`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSkillsDir, "skills-dir", "skills", "Directory containing skill folders (each with SKILL.md)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log loader and ranking diagnostics to stderr")
}

// setup wires the logger and config, then resolves the skills directory.
// Unusable config files and override values are logged and ignored.
func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if flagDebug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cfg, err = config.Load(wd)
	if err != nil {
		logger.Warn("skipping unusable config settings", "error", err)
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}

	if !cmd.Flags().Changed("skills-dir") && cfg.SkillsDir != "" {
		flagSkillsDir = cfg.SkillsDir
	}
	flagSkillsDir, err = config.ExpandPath(flagSkillsDir)
	if err != nil {
		return err
	}
	logger.Debug("skills directory resolved", "dir", flagSkillsDir)
	return nil
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
