// Package workspace owns the working directory tree of a run and its removal.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Workspace is the working directory and its localization subdirectory.
type Workspace struct {
	Root         string
	Translations string
}

// New describes a workspace rooted at root with translations below it.
func New(root, translations string) *Workspace {
	return &Workspace{
		Root:         root,
		Translations: filepath.Join(root, translations),
	}
}

// Create makes both directories. Existing directories are not an error.
func (w *Workspace) Create() error {
	for _, dir := range []string{w.Root, w.Translations} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	return nil
}

// Cleanup removes files and then each directory tree. Paths that no longer
// exist are skipped.
func Cleanup(files, dirs []string) error {
	for _, f := range files {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "remove %s", f)
		}
	}
	for _, d := range dirs {
		if err := os.RemoveAll(d); err != nil {
			return errors.Wrapf(err, "remove %s", d)
		}
	}
	return nil
}
