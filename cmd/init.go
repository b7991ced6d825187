package cmd

import (
	"fmt"
	"io"

	"github.com/kamusis/codex-skills/internal/bundle"
	"github.com/kamusis/codex-skills/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagInitForce bool
	flagInitEnv   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the bundled skills into the skills directory",
	Long: `Copy the bundled skill playbooks into --skills-dir so they can be edited.

Files that already exist and differ from the bundled copy are left alone
unless --force is given. Identical files are never rewritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite existing files")
	initCmd.Flags().BoolVar(&flagInitEnv, "env-template", false, "Also create an empty .env override file in the user config directory")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	printSection(out, "Init")

	res, err := bundle.Materialize(bundle.FS(), flagSkillsDir, flagInitForce)
	if err != nil {
		return err
	}
	logger.Debug("bundled skills materialized", "dir", flagSkillsDir, "written", res.Written, "unchanged", res.Unchanged, "skipped", res.Skipped)
	writeInitResult(out, flagSkillsDir, res)

	if flagInitEnv {
		if err := config.EnsureDotEnvTemplate(); err != nil {
			return err
		}
		p, err := config.DotEnvPath()
		if err != nil {
			return err
		}
		printOK(out, "", fmt.Sprintf("Override template ready: %s", p))
	}
	return nil
}

func writeInitResult(w io.Writer, dir string, res *bundle.Result) {
	printOK(w, "", fmt.Sprintf("Bundled skills written to %s", dir))
	if res.Written > 0 {
		printInfo(w, "", fmt.Sprintf("%d file(s) written across %d skill(s)", res.Written, res.SkillsWritten))
	}
	if res.Unchanged > 0 {
		printSkip(w, "", fmt.Sprintf("%d file(s) already up to date", res.Unchanged))
	}
	if res.Skipped > 0 {
		printWarn(w, "", fmt.Sprintf("%d locally modified file(s) kept (use --force to overwrite)", res.Skipped))
	}
}
