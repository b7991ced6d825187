package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/kamusis/codex-skills/internal/search"
	"github.com/spf13/cobra"
)

var flagSearchContext int

var searchCmd = &cobra.Command{
	Use:   "search <text...>",
	Short: "Search within skill content",
	Long: `Find lines containing <text> (case-insensitive) in skill bodies and their
extra docs. Unlike pick, this is a literal line search with no ranking.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchContext, "context", "C", 2, "Lines of context around each match")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if flagSearchContext < 0 {
		return fmt.Errorf("--context must not be negative, got %d", flagSearchContext)
	}
	c, err := loadCorpus()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	writeSearch(cmd.OutOrStdout(), query, search.SearchContent(c.Skills, query, flagSearchContext))
	return nil
}

func writeSearch(w io.Writer, query string, matches []search.ContentMatch) {
	total := search.TotalLines(matches)
	if total == 0 {
		fmt.Fprintf(w, "No matches found for '%s'\n", query)
		return
	}

	for _, m := range matches {
		fmt.Fprintf(w, "\n%s (%d matches)\n%s\n", m.Skill.Name, len(m.Lines), separator)
		for _, ln := range m.Lines {
			prefix := ""
			if ln.Source != "" {
				prefix = "[" + ln.Source + "] "
			}
			fmt.Fprintf(w, "  %sL%d: %s\n", prefix, ln.Line, ln.Text)
			for _, ctx := range ln.Context {
				fmt.Fprintf(w, "    L%d: %s\n", ctx.Line, ctx.Text)
			}
		}
	}
	fmt.Fprintf(w, "\n%d total matches across %d skills\n", total, len(matches))
}
