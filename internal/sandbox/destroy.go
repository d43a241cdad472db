package sandbox

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/kr-g/xvenv/internal/errors"
	"github.com/kr-g/xvenv/internal/logging"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// RemoveFailure records one entry that could not be deleted.
type RemoveFailure struct {
	Path string
	Err  error
}

// DestroyResult reports what Destroy did.
type DestroyResult struct {
	Root     string
	Declined bool
	Failures []RemoveFailure
}

// Destroy deletes the sandbox after confirmation.
//
// A missing root, or a root that is not a real directory, fails without
// asking. A symlinked root counts as not a directory and is left alone.
// A declined confirmation returns a result with Declined set and no error.
func Destroy(d Descriptor, c Confirmer) (*DestroyResult, error) {
	root := d.Root()
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	res := &DestroyResult{Root: root}

	info, err := os.Lstat(root)
	if err != nil {
		return res, errors.NotFound("folder", root)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return res, errors.NotFound("folder", root+" (symlink)")
	}
	if !info.IsDir() {
		return res, errors.NotFound("folder", root+" (not a folder)")
	}

	ok, err := c.Confirm("really drop " + root + " ?")
	if err != nil {
		return res, err
	}
	if !ok {
		res.Declined = true
		return res, nil
	}

	logging.Debug("removing sandbox", "root", root)
	res.Failures = RemoveTree(root)
	if len(res.Failures) > 0 {
		return res, errors.RemoveFailed(root, len(res.Failures))
	}
	return res, nil
}

// RemoveTree deletes root and everything below it, children before parents.
// Symlinks are unlinked, never followed, including a symlinked root.
// It keeps going after failures and returns all of them.
func RemoveTree(root string) []RemoveFailure {
	var failures []RemoveFailure
	var dirs []string

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			failures = append(failures, RemoveFailure{Path: path, Err: err})
			if entry != nil && entry.IsDir() {
				// Still try to remove the directory itself later.
				dirs = append(dirs, path)
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			dirs = append(dirs, path)
			return nil
		}
		if err := os.Remove(path); err != nil {
			failures = append(failures, RemoveFailure{Path: path, Err: err})
		}
		return nil
	})
	if walkErr != nil {
		failures = append(failures, RemoveFailure{Path: root, Err: walkErr})
	}

	// Deepest directories first.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, dir := range dirs {
		if err := os.Remove(dir); err != nil && !os.IsNotExist(err) {
			failures = append(failures, RemoveFailure{Path: dir, Err: err})
			logging.Debug("remove failed", "path", dir, "error", err)
		}
	}

	return failures
}
