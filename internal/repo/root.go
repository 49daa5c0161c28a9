// Package repo resolves the directory docguard searches.
package repo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned by WorktreeRoot when dir is not inside a git
// worktree.
var ErrNotRepository = errors.New("not inside a git worktree")

// WorktreeRoot returns the top level of the git worktree containing dir.
func WorktreeRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	r, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("failed to open repository at %s: %w", abs, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", ErrNotRepository
		}
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// Resolve picks the search root: explicit when set, else the enclosing git
// worktree of cwd, else cwd itself.
func Resolve(explicit, cwd string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if root, err := WorktreeRoot(cwd); err == nil {
		return root, nil
	}
	return filepath.Abs(cwd)
}
