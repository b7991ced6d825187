package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/kamusis/codex-skills/internal/search"
	"github.com/spf13/cobra"
)

var flagShowRender bool

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a skill playbook and its extra docs",
	Long: `Print a skill playbook by name (case-insensitive). An exact name wins,
otherwise the first skill whose name contains <name> is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowRender, "render", false, "Render markdown when stdout is a terminal")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}
	s, err := search.FindSkill(c.Skills, args[0])
	if err != nil {
		return fmt.Errorf("%w. Use `codex-skills list` to see available entries", err)
	}

	out := cmd.OutOrStdout()
	width, tty := terminalWidth(out)
	if !flagShowRender || !tty {
		writeDoc(out, s)
		return nil
	}

	rendered, err := renderMarkdown(s, width)
	if err != nil {
		logger.Warn("markdown rendering failed, printing plain text", "skill", s.Name, "error", err)
		writeDoc(out, s)
		return nil
	}
	_, err = io.WriteString(out, rendered)
	return err
}

// renderMarkdown renders the body and extra docs as one styled document
// wrapped at width columns.
func renderMarkdown(s *search.Skill, width int) (string, error) {
	var doc bytes.Buffer
	doc.WriteString(strings.TrimSpace(s.Body))
	for _, extra := range s.Extras {
		fmt.Fprintf(&doc, "\n\n---\n\n_%s_\n\n%s", extra.Name, strings.TrimSpace(extra.Contents))
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("cannot create markdown renderer: %w", err)
	}
	out, err := r.Render(doc.String())
	if err != nil {
		return "", fmt.Errorf("cannot render %s: %w", s.Name, err)
	}
	return out, nil
}
