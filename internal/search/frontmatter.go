package search

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter is the YAML header of a SKILL.md. Unknown keys are ignored.
type frontmatter struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Tags        tagList `yaml:"tags"`
	Keywords    tagList `yaml:"keywords"`
}

// tagList accepts either a YAML sequence or a comma-separated scalar.
type tagList []string

func (t *tagList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := n.Decode(&items); err != nil {
			return err
		}
		*t = cleanTags(items)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil
		}
		*t = cleanTags(strings.Split(n.Value, ","))
	default:
		return fmt.Errorf("line %d: tags must be a list or a comma-separated string", n.Line)
	}
	return nil
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitFrontmatter separates a leading "---" delimited header from the body.
// ok is false when content has no complete header.
func splitFrontmatter(content string) (header, body string, ok bool) {
	s := strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(s, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", content, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			header = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return header, body, true
		}
	}
	return "", content, false
}

// parseSkill builds a Skill from raw SKILL.md text. It returns (nil, nil)
// for files without frontmatter and a *ParseError for malformed headers.
func parseSkill(content, origin string, extras []ExtraDoc) (*Skill, error) {
	header, body, ok := splitFrontmatter(content)
	if !ok {
		return nil, nil
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, &ParseError{Path: origin, Err: err}
	}
	name := strings.TrimSpace(fm.Name)
	if name == "" {
		return nil, &ParseError{Path: origin, Err: errors.New("missing required field \"name\"")}
	}
	tags := fm.Tags
	if len(tags) == 0 {
		tags = fm.Keywords
	}

	s := NewSkill(name, strings.TrimSpace(fm.Description), tags, strings.TrimSpace(body), extras)
	s.Origin = origin
	return s, nil
}
