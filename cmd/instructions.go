package cmd

import (
	"fmt"
	"io"

	"github.com/kamusis/codex-skills/internal/search"
	"github.com/spf13/cobra"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Print strict agent instructions and the allowed skill list",
	Args:  cobra.NoArgs,
	RunE:  runInstructions,
}

func init() {
	rootCmd.AddCommand(instructionsCmd)
}

func runInstructions(cmd *cobra.Command, _ []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}
	writeInstructions(cmd.OutOrStdout(), flagSkillsDir, c.Skills)
	return nil
}

const agentRules = `1) The only allowed skills are listed below; do NOT invent new skills.
2) Always pick the best-matching skill before acting; if none fit, say so.
3) When using a skill, follow its playbook text verbatim; do not alter or remove steps.
4) Cite the skill name when responding (e.g., 'Using skill: <name>').
5) Do not read or write files outside the skills directory.`

func writeInstructions(w io.Writer, skillsDir string, skills []*search.Skill) {
	fmt.Fprintf(w, "STRICT INSTRUCTIONS FOR AGENTS\n%s\nOnly use skill playbooks found in: %s\n", separator, skillsDir)
	fmt.Fprintln(w, agentRules)
	fmt.Fprintf(w, "%s\nALLOWED SKILLS:\n", separator)
	for _, s := range skills {
		fmt.Fprintf(w, "- %s — %s\n", s.Name, s.Summary)
	}
}
