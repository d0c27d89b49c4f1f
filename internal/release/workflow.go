package release

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/niref/relbranch/internal/git"
	"github.com/niref/relbranch/internal/manifest"
)

var (
	ErrWrongBranch  = errors.New("not on the required branch")
	ErrBranchExists = errors.New("branch already exists")
)

// Prompter captures operator input. Both calls block until the operator answers.
type Prompter interface {
	// ChooseBump asks for one of choices. There is no default.
	ChooseBump(choices []BumpType) (BumpType, error)
	// Confirm asks a yes/no question, preselecting def.
	Confirm(title string, def bool) (bool, error)
}

// Options configures a single Run.
type Options struct {
	// Dir is where git runs and relative manifest paths are resolved.
	Dir            string
	RequiredBranch string
	Manifest       string
	Prefixes       Prefixes

	// Bump skips the bump prompt when set.
	Bump BumpType
	// AssumeYes skips the confirmation prompt.
	AssumeYes bool
	// DryRun prints the git command instead of running it.
	DryRun bool
}

// Result describes what a Run computed and did.
type Result struct {
	CurrentVersion *semver.Version
	NewVersion     *semver.Version
	Bump           BumpType
	Branch         string
	Created        bool
}

// Plan computes the new version and branch name for bumping current by b.
func Plan(current *semver.Version, b BumpType, p Prefixes) (*Result, error) {
	next, err := Bump(current, b)
	if err != nil {
		return nil, err
	}
	return &Result{
		CurrentVersion: current,
		NewVersion:     next,
		Bump:           b,
		Branch:         p.BranchName(b, next.String()),
	}, nil
}

// Run checks the current branch, reads the manifest version, asks for a bump
// type, and after confirmation creates and checks out the release branch.
//
// Declining the confirmation is not an error: the returned Result has
// Created set to false.
func Run(opts Options, prompter Prompter, out io.Writer) (*Result, error) {
	current, err := git.CurrentBranch(opts.Dir)
	if err != nil {
		return nil, err
	}
	if current != opts.RequiredBranch {
		return nil, fmt.Errorf("%w: you must be on the %s branch (currently on %q)", ErrWrongBranch, opts.RequiredBranch, current)
	}

	manifestPath := opts.Manifest
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(opts.Dir, manifestPath)
	}
	version, err := manifest.ReadVersion(manifestPath)
	if err != nil {
		return nil, err
	}

	bump := opts.Bump
	if bump == "" {
		bump, err = prompter.ChooseBump(BumpTypes)
		if err != nil {
			return nil, err
		}
	}

	res, err := Plan(version, bump, opts.Prefixes)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Bumped version from %s to %s\n", res.CurrentVersion, res.NewVersion)

	if git.BranchExists(opts.Dir, res.Branch) {
		return res, fmt.Errorf("%w: %s", ErrBranchExists, res.Branch)
	}

	command := git.CheckoutCommand(res.Branch)
	if opts.DryRun {
		fmt.Fprintf(out, "Would run: %s\n", command)
		return res, nil
	}

	if opts.AssumeYes {
		fmt.Fprintf(out, "Executing command: %s\n", command)
	} else {
		ok, err := prompter.Confirm(fmt.Sprintf("Executing command:\n\n%s\n\nContinue?", command), true)
		if err != nil {
			return res, err
		}
		if !ok {
			fmt.Fprintln(out, "Aborting...")
			return res, nil
		}
	}

	if err := git.CreateBranch(opts.Dir, res.Branch); err != nil {
		return res, err
	}
	res.Created = true
	fmt.Fprintf(out, "Switched to new branch %s\n", res.Branch)
	return res, nil
}
