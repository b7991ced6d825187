package bundle_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamusis/codex-skills/internal/bundle"
	"github.com/kamusis/codex-skills/internal/search"
)

const bundledFiles = 7 // six SKILL.md files plus one extra doc

func TestFS_LoadsCleanly(t *testing.T) {
	skills, skipped, err := search.LoadSkills(bundle.FS(), "embedded:")
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, skills, 6)

	for _, s := range skills {
		errs, _ := search.CountIssues(search.Validate(s))
		assert.Zero(t, errs, "bundled skill %s has validation errors", s.Name)
	}

	debugging, err := search.FindSkill(skills, "systematic-debugging")
	require.NoError(t, err)
	require.Len(t, debugging.Extras, 1)
	assert.Equal(t, "pressure-tests.md", debugging.Extras[0].Name)
	assert.Contains(t, debugging.Extras[0].Contents, "Pressure Test 1: Emergency Production Fix")
}

func TestMaterialize_WritesSkipsAndForces(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "skills")

	r1, err := bundle.Materialize(bundle.FS(), dst, false)
	require.NoError(t, err)
	assert.Equal(t, bundledFiles, r1.Written)
	assert.Equal(t, 6, r1.SkillsWritten)
	assert.FileExists(t, filepath.Join(dst, "brainstorming", "SKILL.md"))
	assert.FileExists(t, filepath.Join(dst, "systematic-debugging", "pressure-tests.md"))

	r2, err := bundle.Materialize(bundle.FS(), dst, false)
	require.NoError(t, err)
	assert.Zero(t, r2.Written)
	assert.Equal(t, bundledFiles, r2.Unchanged)

	edited := filepath.Join(dst, "brainstorming", "SKILL.md")
	require.NoError(t, os.WriteFile(edited, []byte("local edit"), 0o644))

	r3, err := bundle.Materialize(bundle.FS(), dst, false)
	require.NoError(t, err)
	assert.Equal(t, 1, r3.Skipped)
	b, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.Equal(t, "local edit", string(b), "existing file must survive without force")

	r4, err := bundle.Materialize(bundle.FS(), dst, true)
	require.NoError(t, err)
	assert.Equal(t, 1, r4.Written)
	assert.Equal(t, 1, r4.SkillsWritten)
	b, err = os.ReadFile(edited)
	require.NoError(t, err)
	assert.Contains(t, string(b), "name: brainstorming")
}

func TestMaterialize_RoundTripsThroughLoader(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "skills")
	_, err := bundle.Materialize(bundle.FS(), dst, false)
	require.NoError(t, err)

	c, err := search.LoadCorpus(dst, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, dst, c.Source)
	assert.Len(t, c.Skills, 6)
}

func TestMaterialize_RespectsHeldLock(t *testing.T) {
	dst := t.TempDir()
	held := flock.New(filepath.Join(dst, bundle.LockFile))
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = held.Unlock() }()

	done := make(chan error, 1)
	go func() {
		_, err := bundle.Materialize(bundle.FS(), dst, false)
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("Materialize returned while lock was held: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, held.Unlock())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Materialize did not finish after lock release")
	}
}
