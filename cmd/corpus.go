package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/kamusis/codex-skills/internal/bundle"
	"github.com/kamusis/codex-skills/internal/search"
)

// loadCorpus loads the skills directory, falling back to the bundled skills.
func loadCorpus() (*search.Corpus, error) {
	c, err := search.LoadCorpus(flagSkillsDir, bundle.FS(), logger)
	if err != nil {
		return nil, err
	}
	if len(c.Skills) == 0 {
		return nil, fmt.Errorf("%w in %s. Add SKILL.md files to get started", search.ErrNoSkills, flagSkillsDir)
	}
	return c, nil
}

// writeDoc prints a skill body followed by its extra docs.
func writeDoc(w io.Writer, s *search.Skill) {
	writeBody(w, s)
	writeExtras(w, s)
}

func writeBody(w io.Writer, s *search.Skill) {
	fmt.Fprintf(w, "%s\n%s\n\n", separator, strings.TrimSpace(s.Body))
}

func writeExtras(w io.Writer, s *search.Skill) {
	for _, extra := range s.Extras {
		fmt.Fprintf(w, "\n%s %s\n%s\n\n", separator, extra.Name, strings.TrimSpace(extra.Contents))
	}
}
