package cmd

import (
	"fmt"
	"io"

	"github.com/kamusis/codex-skills/internal/search"
	"github.com/spf13/cobra"
)

var flagValidateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate skill files for correctness",
	Long: `Check every skill for missing or weak metadata. Errors (missing name or
description, empty body, unparseable frontmatter) fail the command; warnings
fail it only with --strict.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagValidateStrict, "strict", false, "Fail on warnings too")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	c, err := loadCorpus()
	if err != nil {
		return err
	}
	errs, warnings := writeValidation(cmd.OutOrStdout(), c)
	if errs > 0 || (flagValidateStrict && warnings > 0) {
		return fmt.Errorf("validation failed: %d errors, %d warnings", errs, warnings)
	}
	return nil
}

// writeValidation reports every issue and returns the totals.
func writeValidation(w io.Writer, c *search.Corpus) (errs, warnings int) {
	for _, perr := range c.Skipped {
		fmt.Fprintf(w, "\n%s\n", perr.Path)
		printErr(w, "", "ERROR: "+perr.Err.Error())
		errs++
	}

	for _, s := range c.Skills {
		issues := search.Validate(s)
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", s.Name)
		for _, is := range issues {
			msg := is.Severity.String() + ": " + is.Message
			if is.Severity == search.SeverityError {
				printErr(w, "", msg)
			} else {
				printWarn(w, "", msg)
			}
		}
		e, wn := search.CountIssues(issues)
		errs += e
		warnings += wn
	}

	fmt.Fprintf(w, "\n%d skills validated\n", len(c.Skills))
	fmt.Fprintf(w, "  %d errors, %d warnings\n", errs, warnings)
	return errs, warnings
}
