package search

import (
	"strings"
)

// LineMatch is one matching line inside a skill body or extra doc.
type LineMatch struct {
	// Source is "" for the skill body, otherwise the extra doc name.
	Source string
	// Line is 1-based.
	Line    int
	Text    string
	Context []ContextLine
}

// ContextLine is a neighbouring line shown around a match.
type ContextLine struct {
	Line int
	Text string
}

// ContentMatch groups the matching lines of one skill.
type ContentMatch struct {
	Skill *Skill
	Lines []LineMatch
}

// SearchContent finds lines containing query (case-insensitive) in skill
// bodies and extra docs. context is the number of lines kept on each side of
// a match. Skills appear in corpus order.
func SearchContent(skills []*Skill, query string, context int) []ContentMatch {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []ContentMatch{}
	}

	out := []ContentMatch{}
	for _, s := range skills {
		lines := grepLines("", s.Body, needle, context)
		for _, extra := range s.Extras {
			lines = append(lines, grepLines(extra.Name, extra.Contents, needle, context)...)
		}
		if len(lines) > 0 {
			out = append(out, ContentMatch{Skill: s, Lines: lines})
		}
	}
	return out
}

func grepLines(source, text, needle string, context int) []LineMatch {
	lines := strings.Split(text, "\n")
	var out []LineMatch
	for i, ln := range lines {
		if !strings.Contains(strings.ToLower(ln), needle) {
			continue
		}
		m := LineMatch{Source: source, Line: i + 1, Text: strings.TrimSpace(ln)}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			if j == i {
				continue
			}
			m.Context = append(m.Context, ContextLine{Line: j + 1, Text: strings.TrimSpace(lines[j])})
		}
		out = append(out, m)
	}
	return out
}

// TotalLines counts every matching line across matches.
func TotalLines(matches []ContentMatch) int {
	n := 0
	for _, m := range matches {
		n += len(m.Lines)
	}
	return n
}
