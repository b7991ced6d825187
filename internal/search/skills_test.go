package search

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"alpha/SKILL.md":        file("---\nname: alpha\ndescription: First skill\ntags:\n  - one\n  - two\n---\n\n# Alpha\n\nDo the alpha thing.\n"),
		"alpha/notes.md":        file("alpha notes"),
		"alpha/refs/deep.md":    file("deep reference"),
		"alpha/script.sh":       file("echo not markdown"),
		"broken/SKILL.md":       file("---\nname: [unclosed\n---\nbody\n"),
		"nameless/SKILL.md":     file("---\ndescription: no name here\n---\nbody\n"),
		"plain/SKILL.md":        file("# No frontmatter at all\n"),
		"readme/README.md":      file("not a skill"),
		"zeta/skill.md":         file("---\nname: zeta\ndescription: Lowercase file name\ntags: x, y ,\n---\nZeta body\n"),
		"kw/SKILL.md":           file("---\nname: kw\ndescription: Keyword alias\nkeywords: [a, b]\n---\nKW body\n"),
		".hidden/SKILL.md":      file("---\nname: hidden\ndescription: never loaded\n---\nbody\n"),
		"unterminated/SKILL.md": file("---\nname: open\n"),
	}
}

func TestLoadSkills_ParsesAndSkips(t *testing.T) {
	skills, skipped, err := LoadSkills(fixtureFS(), "root")
	require.NoError(t, err)

	var got []string
	for _, s := range skills {
		got = append(got, s.Name)
	}
	assert.Equal(t, []string{"alpha", "kw", "zeta"}, got)

	require.Len(t, skipped, 2)
	assert.Equal(t, "root/broken/SKILL.md", skipped[0].Path)
	assert.Equal(t, "root/nameless/SKILL.md", skipped[1].Path)

	alpha := skills[0]
	assert.Equal(t, "First skill", alpha.Summary)
	assert.Equal(t, []string{"one", "two"}, alpha.Tags)
	assert.Equal(t, "# Alpha\n\nDo the alpha thing.", alpha.Body)
	assert.Equal(t, "root/alpha/SKILL.md", alpha.Origin)
	assert.Equal(t, []ExtraDoc{
		{Name: "notes.md", Contents: "alpha notes"},
		{Name: "refs/deep.md", Contents: "deep reference"},
	}, alpha.Extras)

	assert.Equal(t, []string{"a", "b"}, skills[1].Tags)
	assert.Equal(t, []string{"x", "y"}, skills[2].Tags)
}

func TestLoadSkills_TokensPrecomputed(t *testing.T) {
	skills, _, err := LoadSkills(fixtureFS(), "root")
	require.NoError(t, err)

	s := ComputeSignals(NewQuery("alpha two"), skills[0])
	assert.Equal(t, 1, s.NameHits)
	assert.Equal(t, 1, s.TagHits)
	assert.Equal(t, 1, s.BodyHits)
}

func TestParseError_Unwraps(t *testing.T) {
	_, skipped, err := LoadSkills(fixtureFS(), "root")
	require.NoError(t, err)
	require.NotEmpty(t, skipped)

	var perr *ParseError
	wrapped := error(skipped[0])
	assert.True(t, errors.As(wrapped, &perr))
	assert.NotNil(t, errors.Unwrap(wrapped))
	assert.Contains(t, wrapped.Error(), "root/broken/SKILL.md")
}

func TestDedupe_FirstWins(t *testing.T) {
	first := NewSkill("test-skill", "first", nil, "", nil)
	skills := Dedupe([]*Skill{
		first,
		NewSkill("Test-Skill", "second", nil, "", nil),
		NewSkill("other-skill", "", nil, "", nil),
	})

	require.Len(t, skills, 2)
	assert.Same(t, first, skills[0])
	assert.Equal(t, "other-skill", skills[1].Name)
}

func writeSkill(t *testing.T, root, dir, content string) {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644))
}

func TestLoadCorpus_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSkill(t, dir, "demo", "---\nname: demo-skill\ndescription: Hello world\n---\n\n# Body\n")
	writeSkill(t, dir, "dup", "---\nname: Demo-Skill\ndescription: Shadowed\n---\nbody\n")

	c, err := LoadCorpus(dir, fixtureFS(), nil)
	require.NoError(t, err)

	assert.Equal(t, dir, c.Source)
	require.Len(t, c.Skills, 1)
	assert.Equal(t, "demo-skill", c.Skills[0].Name)
	assert.Equal(t, "Hello world", c.Skills[0].Summary)
}

func TestLoadCorpus_FallsBackToBundled(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	c, err := LoadCorpus(missing, fixtureFS(), nil)
	require.NoError(t, err)
	assert.Equal(t, BundledSource, c.Source)
	assert.Len(t, c.Skills, 3)
	assert.Len(t, c.Skipped, 2)

	empty := t.TempDir()
	c, err = LoadCorpus(empty, fixtureFS(), nil)
	require.NoError(t, err)
	assert.Equal(t, BundledSource, c.Source)
}

func TestLoadCorpus_NoFallback(t *testing.T) {
	c, err := LoadCorpus(t.TempDir(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, c.Skills)
}

func TestLoadCorpus_NotADirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	_, err := LoadCorpus(p, fixtureFS(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestFindSkill(t *testing.T) {
	skills := []*Skill{
		NewSkill("systematic-debugging", "", nil, "", nil),
		NewSkill("debugging", "", nil, "", nil),
	}

	s, err := FindSkill(skills, "DEBUGGING")
	require.NoError(t, err)
	assert.Equal(t, "debugging", s.Name, "exact match beats substring")

	s, err = FindSkill(skills, "systematic")
	require.NoError(t, err)
	assert.Equal(t, "systematic-debugging", s.Name)

	_, err = FindSkill(skills, "knitting")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "knitting", nf.Name)

	_, err = FindSkill(skills, "  ")
	assert.ErrorAs(t, err, &nf)
}
