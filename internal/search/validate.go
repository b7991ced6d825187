package search

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Recommended limits checked by Validate.
const (
	maxSummaryChars = 200
	minTags         = 3
	minBodyChars    = 100
)

// Severity grades a validation Issue.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "ERROR"
	}
	return "WARNING"
}

// Issue is one validation finding.
type Issue struct {
	Severity Severity
	Message  string
}

// Validate checks a skill for structural problems that make it hard to route
// to. It does not look at other skills.
func Validate(s *Skill) []Issue {
	var issues []Issue
	add := func(sev Severity, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case s.Name == "":
		add(SeverityError, "Missing name")
	case strings.Contains(s.Name, " "):
		add(SeverityWarning, "Name contains spaces (consider using kebab-case)")
	}

	switch n := utf8.RuneCountInString(s.Summary); {
	case n == 0:
		add(SeverityError, "Missing description")
	case n > maxSummaryChars:
		add(SeverityWarning, "Description is %d chars (recommended: <%d)", n, maxSummaryChars)
	}

	switch n := len(s.Tags); {
	case n == 0:
		add(SeverityWarning, "No tags defined (recommended: %d+)", minTags)
	case n < minTags:
		add(SeverityWarning, "Only %d tag(s) (recommended: %d+)", n, minTags)
	}

	switch n := utf8.RuneCountInString(s.Body); {
	case n == 0:
		add(SeverityError, "Empty skill body")
	case n < minBodyChars:
		add(SeverityWarning, "Very short skill body (<%d chars)", minBodyChars)
	}
	return issues
}

// CountIssues splits issues into error and warning counts.
func CountIssues(issues []Issue) (errs, warnings int) {
	for _, is := range issues {
		if is.Severity == SeverityError {
			errs++
		} else {
			warnings++
		}
	}
	return errs, warnings
}
