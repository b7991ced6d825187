package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kamusis/codex-skills/internal/search"
	"github.com/spf13/cobra"
)

// closestNamesLimit caps the shortlist printed when nothing matches.
const closestNamesLimit = 5

var (
	flagPickTop  int
	flagPickShow bool
)

var pickCmd = &cobra.Command{
	Use:   "pick <task description...>",
	Short: "Suggest the best matching skills for a task description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().IntVarP(&flagPickTop, "top", "t", 3, "Number of candidates to show")
	pickCmd.Flags().BoolVar(&flagPickShow, "show", false, "Print the full playbook for the top result")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	top := flagPickTop
	if !cmd.Flags().Changed("top") {
		top = cfg.EffectiveTop()
	}
	if top < 1 {
		return fmt.Errorf("--top must be at least 1, got %d", top)
	}

	c, err := loadCorpus()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	ranked := search.Rank(query, c.Skills, top)
	if len(ranked) > 0 {
		best := ranked[0]
		logger.Debug("ranked skills", "query", query, "candidates", len(c.Skills), "best", best.Skill.Name, "score", best.Score)
	}
	writePick(cmd.OutOrStdout(), query, c.Skills, ranked, flagPickShow)
	return nil
}

func writePick(w io.Writer, query string, skills []*search.Skill, ranked []search.Ranked, show bool) {
	if len(ranked) == 0 || ranked[0].Score == 0 {
		shortlist := "(no close names found)"
		if names := search.ClosestNames(query, skills, closestNamesLimit); len(names) > 0 {
			shortlist = strings.Join(names, ", ")
		}
		fmt.Fprintf(w, "No good skill match for '%s'. Try a broader or simpler description.\nClosest skill names: %s\n", query, shortlist)
		return
	}

	for i, r := range ranked {
		fmt.Fprintf(w, "%d. %s (score: %s) — %s\n", i+1, r.Skill.Name, formatScore(r.Score), r.Skill.Summary)
		if show && i == 0 {
			fmt.Fprintln(w)
			writeBody(w, r.Skill)
			fmt.Fprintln(w, reasoning(r.Signals))
			writeExtras(w, r.Skill)
		}
	}
}

// reasoning explains every signal behind the top match. Similarities are
// shown gated, with the raw value alongside.
func reasoning(s search.Signals) string {
	return fmt.Sprintf("Top match reasoning: name hits=%d, summary hits=%d, tag hits=%d, body hits=%d, phrase bonus=%d, "+
		"name similarity=%.3f (raw %.3f), summary similarity=%.3f (raw %.3f)",
		s.NameHits, s.SummaryHits, s.TagHits, s.BodyHits, s.PhraseBonus(),
		s.NameSim, s.NameSimRaw, s.SummarySim, s.SummarySimRaw)
}

// formatScore prints a score with at most two decimals and no trailing zeros.
func formatScore(score float64) string {
	return strconv.FormatFloat(math.Round(score*100)/100, 'f', -1, 64)
}
