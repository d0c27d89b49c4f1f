package git

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
)

var ErrNotGitRepo = errors.New("not a git repository")

// FindRepoRoot finds the root of the git repository containing dir.
// When called from a worktree, returns the main repository root, not the worktree path.
func FindRepoRoot(dir string) (string, error) {
	// --git-common-dir points at the main repo's .git directory from both
	// the main checkout and linked worktrees
	cmd := exec.Command("git", "rev-parse", "--git-common-dir")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", ErrNotGitRepo
	}

	gitDir := strings.TrimSpace(string(out))

	// Relative (".git") from the main checkout, absolute from worktrees
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}

	return filepath.Dir(gitDir), nil
}
