package search

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
)

const skillFile = "SKILL.md"

// BundledSource is the Corpus.Source value for the embedded corpus.
const BundledSource = "bundled"

// Corpus is the deduplicated skill list handed to the ranker.
type Corpus struct {
	Skills []*Skill
	// Source is the directory the skills came from, or BundledSource.
	Source string
	// Skipped lists skills dropped because their frontmatter was malformed.
	Skipped []*ParseError
}

// LoadSkills walks fsys for SKILL.md files (matched case-insensitively) in
// lexical order and parses each one. origin prefixes the paths recorded on
// skills and errors. Malformed skills are returned as ParseErrors instead of
// failing the load; any other error aborts it.
func LoadSkills(fsys fs.FS, origin string) ([]*Skill, []*ParseError, error) {
	var (
		skills  []*Skill
		skipped []*ParseError
	)
	walkFn := func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(d.Name(), skillFile) {
			return nil
		}

		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", path.Join(origin, p), err)
		}
		extras, err := loadExtraDocs(fsys, path.Dir(p))
		if err != nil {
			return err
		}

		s, err := parseSkill(string(b), path.Join(origin, p), extras)
		var perr *ParseError
		switch {
		case errors.As(err, &perr):
			skipped = append(skipped, perr)
		case err != nil:
			return err
		case s != nil:
			skills = append(skills, s)
		}
		return nil
	}

	if err := fs.WalkDir(fsys, ".", walkFn); err != nil {
		return nil, nil, fmt.Errorf("cannot scan skills: %w", err)
	}
	return skills, skipped, nil
}

// loadExtraDocs collects every markdown file below dir except SKILL.md files,
// named by their slash path relative to dir.
func loadExtraDocs(fsys fs.FS, dir string) ([]ExtraDoc, error) {
	var out []ExtraDoc
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		name := d.Name()
		if strings.EqualFold(name, skillFile) || !strings.EqualFold(path.Ext(name), ".md") {
			return nil
		}
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("cannot read extra doc %s: %w", p, err)
		}
		rel := strings.TrimPrefix(p, dir+"/")
		if dir == "." {
			rel = p
		}
		out = append(out, ExtraDoc{Name: rel, Contents: string(b)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Dedupe drops skills whose name repeats an earlier one, ignoring case. The
// first skill loaded under a name wins.
func Dedupe(skills []*Skill) []*Skill {
	seen := make(map[string]struct{}, len(skills))
	out := make([]*Skill, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// LoadCorpus loads skills from dir, falling back to bundled when dir is
// missing or holds no skills. A nil bundled disables the fallback. Skipped
// skills are logged as warnings on logger.
func LoadCorpus(dir string, bundled fs.FS, logger *slog.Logger) (*Corpus, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Corpus{Source: dir}
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("skills path is not a directory: %s", dir)
	case err == nil:
		c.Skills, c.Skipped, err = LoadSkills(os.DirFS(dir), dir)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("skills directory missing", "dir", dir)
	default:
		return nil, fmt.Errorf("cannot stat skills directory %s: %w", dir, err)
	}

	if len(c.Skills) == 0 && bundled != nil {
		logger.Debug("falling back to bundled skills", "dir", dir)
		skills, skipped, err := LoadSkills(bundled, "embedded:")
		if err != nil {
			return nil, fmt.Errorf("cannot load bundled skills: %w", err)
		}
		c.Skills = skills
		c.Skipped = append(c.Skipped, skipped...)
		c.Source = BundledSource
	}

	for _, perr := range c.Skipped {
		logger.Warn("skipping skill", "path", perr.Path, "error", perr.Err)
	}

	before := len(c.Skills)
	c.Skills = Dedupe(c.Skills)
	if n := before - len(c.Skills); n > 0 {
		logger.Debug("dropped duplicate skills", "count", n)
	}
	logger.Debug("corpus loaded", "source", c.Source, "skills", len(c.Skills))
	return c, nil
}

// FindSkill looks a skill up by name, ignoring case. An exact match wins over
// the first skill whose name contains name.
func FindSkill(skills []*Skill, name string) (*Skill, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle != "" {
		for _, s := range skills {
			if strings.ToLower(s.Name) == needle {
				return s, nil
			}
		}
		for _, s := range skills {
			if strings.Contains(strings.ToLower(s.Name), needle) {
				return s, nil
			}
		}
	}
	return nil, &NotFoundError{Name: name}
}
