package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kamusis/codex-skills/internal/search"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about loaded skills",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, tty := terminalWidth(out)
	return writeStats(out, search.ComputeStats(c.Skills), tty)
}

// statsRows flattens st into label/value pairs, in display order.
func statsRows(st search.Stats) [][]string {
	rows := [][]string{{"Total skills", strconv.Itoa(st.Total)}}
	if st.Largest != nil {
		rows = append(rows, []string{"Largest skill",
			fmt.Sprintf("%s (%d chars, %d extra docs)", st.Largest.Name, len(st.Largest.Body), len(st.Largest.Extras))})
	}
	if st.Smallest != nil {
		rows = append(rows, []string{"Smallest skill",
			fmt.Sprintf("%s (%d chars)", st.Smallest.Name, len(st.Smallest.Body))})
	}
	return append(rows,
		[]string{"Total extra docs", strconv.Itoa(st.ExtraDocs)},
		[]string{"Average skill size", fmt.Sprintf("%d chars", st.AverageSize)},
		[]string{"Skills with tags", fmt.Sprintf("%d/%d", st.WithTags, st.Total)},
		[]string{"Unique tags", strconv.Itoa(len(st.UniqueTags))},
	)
}

// writeStats prints a pterm table on terminals and plain "label: value"
// lines otherwise.
func writeStats(w io.Writer, st search.Stats, tty bool) error {
	rows := statsRows(st)

	if tty {
		data := pterm.TableData{{"Metric", "Value"}}
		data = append(data, rows...)
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("cannot render stats table: %w", err)
		}
		fmt.Fprintln(w, table)
	} else {
		fmt.Fprintf(w, "Skill Statistics\n%s\n", separator)
		for _, r := range rows {
			fmt.Fprintf(w, "%s: %s\n", r[0], r[1])
		}
	}

	if len(st.UniqueTags) > 0 {
		fmt.Fprintf(w, "\nTags: %s\n", strings.Join(st.UniqueTags, ", "))
	}
	return nil
}
