package search

import (
	"errors"
	"fmt"
)

// ErrNoSkills indicates a corpus with nothing in it.
var ErrNoSkills = errors.New("no skills found")

// ParseError reports a SKILL.md whose frontmatter could not be decoded.
// Loaders skip the offending skill and keep going.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid frontmatter in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError reports a lookup by name that matched no skill.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("skill %q not found", e.Name)
}
