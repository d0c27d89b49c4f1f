package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/niref/relbranch/internal/git"
	"github.com/niref/relbranch/internal/manifest"
	"github.com/niref/relbranch/internal/release"
)

type scriptedPrompter struct {
	bump    release.BumpType
	confirm bool
	calls   int
}

func (s *scriptedPrompter) ChooseBump(choices []release.BumpType) (release.BumpType, error) {
	s.calls++
	return s.bump, nil
}

func (s *scriptedPrompter) Confirm(title string, def bool) (bool, error) {
	s.calls++
	return s.confirm, nil
}

func setupTestRepo(t *testing.T, version string) string {
	t.Helper()
	repoDir := filepath.Join(t.TempDir(), "myrepo")
	if err := os.MkdirAll(repoDir, 0755); err != nil {
		t.Fatal(err)
	}

	cmds := [][]string{
		{"git", "init"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test"},
		{"git", "commit", "--allow-empty", "-m", "initial"},
		{"git", "branch", "-M", "main"},
	}
	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = repoDir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("%v failed: %v\n%s", args, err, out)
		}
	}

	content := `{"name": "myrepo", "version": "` + version + `"}`
	if err := os.WriteFile(filepath.Join(repoDir, "package.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// Keep the developer's own config out of the tests
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))

	return repoDir
}

// runCLI runs rootCmd in dir with the given prompter and returns its output.
func runCLI(t *testing.T, dir string, p release.Prompter, args ...string) (string, error) {
	t.Helper()

	origDir, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(origDir)

	origPrompter := newPrompter
	newPrompter = func() release.Prompter { return p }

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		newPrompter = origPrompter
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
		manifestPath = ""
		releaseBranch = ""
		releaseBumpType = ""
		releaseAssumeYes = false
		releaseDryRun = false
		nextPrintBranch = false
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestReleaseMinor(t *testing.T) {
	repoDir := setupTestRepo(t, "2.3.1")
	p := &scriptedPrompter{bump: release.Minor, confirm: true}

	out, err := runCLI(t, repoDir, p)
	if err != nil {
		t.Fatalf("release failed: %v\n%s", err, out)
	}

	if !strings.Contains(out, "Bumped version from 2.3.1 to 2.4.0") {
		t.Errorf("unexpected output: %s", out)
	}
	branch, _ := git.CurrentBranch(repoDir)
	if branch != "release/2.4.0" {
		t.Errorf("expected release/2.4.0, got %s", branch)
	}
}

func TestReleaseHotfixNonInteractive(t *testing.T) {
	repoDir := setupTestRepo(t, "2.3.1")
	p := &scriptedPrompter{}

	out, err := runCLI(t, repoDir, p, "--type", "hotfix", "--yes")
	if err != nil {
		t.Fatalf("release failed: %v\n%s", err, out)
	}
	if p.calls != 0 {
		t.Errorf("expected no prompts, got %d", p.calls)
	}

	branch, _ := git.CurrentBranch(repoDir)
	if branch != "hotfix/2.3.2" {
		t.Errorf("expected hotfix/2.3.2, got %s", branch)
	}
}

func TestReleaseWrongBranch(t *testing.T) {
	repoDir := setupTestRepo(t, "2.3.1")
	cmd := exec.Command("git", "checkout", "-b", "develop")
	cmd.Dir = repoDir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("checkout failed: %v\n%s", err, out)
	}

	p := &scriptedPrompter{bump: release.Minor, confirm: true}
	_, err := runCLI(t, repoDir, p)
	if !errors.Is(err, release.ErrWrongBranch) {
		t.Fatalf("expected ErrWrongBranch, got %v", err)
	}
	if p.calls != 0 {
		t.Error("should not prompt on the wrong branch")
	}
}

func TestReleaseBranchFlagOverride(t *testing.T) {
	repoDir := setupTestRepo(t, "2.3.1")
	cmd := exec.Command("git", "checkout", "-b", "develop")
	cmd.Dir = repoDir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("checkout failed: %v\n%s", err, out)
	}

	p := &scriptedPrompter{bump: release.Major, confirm: true}
	out, err := runCLI(t, repoDir, p, "--branch", "develop")
	if err != nil {
		t.Fatalf("release failed: %v\n%s", err, out)
	}

	branch, _ := git.CurrentBranch(repoDir)
	if branch != "release/3.0.0" {
		t.Errorf("expected release/3.0.0, got %s", branch)
	}
}

func TestReleaseInvalidVersion(t *testing.T) {
	repoDir := setupTestRepo(t, "1.2")
	p := &scriptedPrompter{bump: release.Minor, confirm: true}

	_, err := runCLI(t, repoDir, p)
	if !errors.Is(err, manifest.ErrInvalidVersion) {
		t.Fatalf("expected ErrInvalidVersion, got %v", err)
	}
	if p.calls != 0 {
		t.Error("should not prompt for an invalid version")
	}
}

func TestReleaseDeclined(t *testing.T) {
	repoDir := setupTestRepo(t, "2.3.1")
	p := &scriptedPrompter{bump: release.Hotfix, confirm: false}

	out, err := runCLI(t, repoDir, p)
	if err != nil {
		t.Fatalf("declined release should exit normally: %v", err)
	}
	if !strings.Contains(out, "Aborting...") {
		t.Errorf("expected abort message, got %s", out)
	}
	if git.BranchExists(repoDir, "hotfix/2.3.2") {
		t.Error("branch should not be created when declined")
	}
}

func TestReleaseUnknownType(t *testing.T) {
	repoDir := setupTestRepo(t, "2.3.1")

	_, err := runCLI(t, repoDir, &scriptedPrompter{}, "--type", "patch")
	if !errors.Is(err, release.ErrUnknownBumpType) {
		t.Fatalf("expected ErrUnknownBumpType, got %v", err)
	}
}

func TestReleaseRepoConfig(t *testing.T) {
	repoDir := setupTestRepo(t, "2.3.1")
	cfg := `
required_branch = "main"
release_prefix = "releases"
`
	if err := os.WriteFile(filepath.Join(repoDir, ".relbranch.toml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, repoDir, &scriptedPrompter{}, "--type", "minor", "--dry-run")
	if err != nil {
		t.Fatalf("release failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Would run: git checkout -b releases/2.4.0") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestReleaseNotGitRepo(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	_, err := runCLI(t, dir, &scriptedPrompter{})
	if err == nil || !strings.Contains(err.Error(), "not in a git repository") {
		t.Errorf("expected not-in-repo error, got %v", err)
	}
}
