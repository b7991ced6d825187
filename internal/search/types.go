package search

import "strings"

// Skill is one routable playbook. It is built once by NewSkill and never
// mutated afterwards.
type Skill struct {
	Name    string
	Summary string
	Tags    []string
	Body    string
	Extras  []ExtraDoc
	// Origin is the file the skill was read from, for messages only.
	Origin string

	name    Text
	summary Text
	tags    Text
	body    Text
}

// ExtraDoc is an auxiliary markdown file shipped next to a SKILL.md.
type ExtraDoc struct {
	Name     string
	Contents string
}

// NewSkill builds a Skill and precomputes the normalized form of every
// scored field.
func NewSkill(name, summary string, tags []string, body string, extras []ExtraDoc) *Skill {
	return &Skill{
		Name:    name,
		Summary: summary,
		Tags:    tags,
		Body:    body,
		Extras:  extras,
		name:    Normalize(name),
		summary: Normalize(summary),
		tags:    Normalize(strings.Join(tags, "\n")),
		body:    Normalize(body),
	}
}

// Query is a request string in normalized form.
type Query struct {
	Raw string
	Text
}

// NewQuery normalizes raw for matching.
func NewQuery(raw string) Query {
	return Query{Raw: raw, Text: Normalize(raw)}
}

// Ranked is one ranking position.
type Ranked struct {
	Skill   *Skill
	Signals Signals
	Score   float64
}
