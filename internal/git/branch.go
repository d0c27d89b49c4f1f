package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CurrentBranch returns the branch checked out in dir.
// Returns an empty string on a detached HEAD.
func CurrentBranch(dir string) (string, error) {
	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git branch --show-current: %w%s", err, stderrOf(err))
	}
	return strings.TrimSpace(string(out)), nil
}

// BranchExists reports whether a local branch with the given name exists.
func BranchExists(dir, branch string) bool {
	cmd := exec.Command("git", "rev-parse", "--verify", "--quiet", "refs/heads/"+branch)
	cmd.Dir = dir
	return cmd.Run() == nil
}

// CheckoutArgs returns the git arguments that create and check out branch.
func CheckoutArgs(branch string) []string {
	return []string{"checkout", "-b", branch}
}

// CheckoutCommand renders the command CreateBranch runs, for display.
func CheckoutCommand(branch string) string {
	return "git " + strings.Join(CheckoutArgs(branch), " ")
}

// CreateBranch creates branch from HEAD and checks it out.
func CreateBranch(dir, branch string) error {
	cmd := exec.Command("git", CheckoutArgs(branch)...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git checkout -b: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func stderrOf(err error) string {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || len(exitErr.Stderr) == 0 {
		return ""
	}
	return ": " + strings.TrimSpace(string(exitErr.Stderr))
}
