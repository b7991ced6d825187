package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kamusis/codex-skills/internal/search"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// listFormat selects one rendering of the skill list.
type listFormat int

const (
	listClipped listFormat = iota
	listBrief
	listVerbose
	listJSON
)

var (
	flagListBrief   bool
	flagListVerbose bool
	flagListJSON    bool
	flagListClip    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available skills with a short summary",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListBrief, "brief", false, "Output only names")
	listCmd.Flags().BoolVar(&flagListVerbose, "verbose", false, "Output full summaries (no clipping)")
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "Output a JSON array of skill names")
	listCmd.Flags().IntVar(&flagListClip, "clip", 80, "Maximum display width for clipped summaries")
	listCmd.MarkFlagsMutuallyExclusive("brief", "verbose", "json")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}

	format := listClipped
	switch {
	case flagListBrief:
		format = listBrief
	case flagListVerbose:
		format = listVerbose
	case flagListJSON:
		format = listJSON
	}

	clip := flagListClip
	if !cmd.Flags().Changed("clip") {
		clip = cfg.EffectiveClip()
	}
	return writeList(cmd.OutOrStdout(), c.Skills, format, clip)
}

func writeList(w io.Writer, skills []*search.Skill, format listFormat, clip int) error {
	if format == listJSON {
		names := make([]string, len(skills))
		for i, s := range skills {
			names[i] = s.Name
		}
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(names); err != nil {
			return fmt.Errorf("cannot encode skill names: %w", err)
		}
		return nil
	}

	for _, s := range skills {
		switch format {
		case listBrief:
			fmt.Fprintf(w, "- %s\n", s.Name)
		case listVerbose:
			fmt.Fprintf(w, "- %s — %s\n", s.Name, s.Summary)
		default:
			fmt.Fprintf(w, "- %s — %s\n", s.Name, clipSummary(s.Summary, clip))
		}
	}
	return nil
}

// clipSummary cuts text to limit display columns and marks the cut with "...".
func clipSummary(text string, limit int) string {
	if runewidth.StringWidth(text) <= limit {
		return text
	}
	return runewidth.Truncate(text, limit, "") + "..."
}
