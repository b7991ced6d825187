package bundle

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// LockFile is created inside the destination while Materialize runs.
const LockFile = ".codex-skills.lock"

const lockTimeout = 5 * time.Second

// Result is returned by Materialize.
type Result struct {
	Written   int // files created or overwritten
	Unchanged int // files already identical on disk
	Skipped   int // files left alone because they differ and force was off

	// Skill-level count: top-level directories with at least one written file.
	SkillsWritten int
}

// Materialize copies every file of fsys into dstDir. Existing files that
// differ are kept unless force is set; identical files are never rewritten.
// Concurrent runs against the same dstDir are serialised by a lock file.
func Materialize(fsys fs.FS, dstDir string, force bool) (*Result, error) {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create skills directory %s: %w", dstDir, err)
	}
	unlock, err := acquireLock(filepath.Join(dstDir, LockFile), lockTimeout)
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := &Result{}
	skillWritten := map[string]bool{}

	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == "." {
			return nil
		}
		dst := filepath.Join(dstDir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read bundled %s: %w", p, err)
		}

		existing, err := os.ReadFile(dst)
		switch {
		case err == nil && bytes.Equal(existing, data):
			result.Unchanged++
			return nil
		case err == nil && !force:
			result.Skipped++
			return nil
		case err != nil && !os.IsNotExist(err):
			return fmt.Errorf("stat %s: %w", dst, err)
		}

		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
		result.Written++
		skillWritten[strings.SplitN(p, "/", 2)[0]] = true
		return nil
	})
	if err != nil {
		return result, err
	}

	result.SkillsWritten = len(skillWritten)
	return result, nil
}

// acquireLock takes an exclusive lock on lockPath, polling until timeout.
func acquireLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire lock %s: %w", lockPath, err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another init is writing to %s (lock: %s)", filepath.Dir(lockPath), lockPath)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
