package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/niref/relbranch/internal/release"
	"golang.org/x/term"
)

var ErrNotInteractive = errors.New("stdin is not a terminal")

// newPrompter is swapped out in tests.
var newPrompter = func() release.Prompter {
	return huhPrompter{}
}

type huhPrompter struct{}

// bumpOptions builds the select options for the bump prompt, in the order given.
func bumpOptions(choices []release.BumpType) []huh.Option[release.BumpType] {
	options := make([]huh.Option[release.BumpType], len(choices))
	for i, c := range choices {
		options[i] = huh.NewOption(c.String(), c)
	}
	return options
}

func (huhPrompter) ChooseBump(choices []release.BumpType) (release.BumpType, error) {
	if err := requireTerminal(); err != nil {
		return "", err
	}

	var selected release.BumpType
	err := huh.NewSelect[release.BumpType]().
		Title("Choose a version bump type:").
		Options(bumpOptions(choices)...).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return selected, nil
}

func (huhPrompter) Confirm(title string, def bool) (bool, error) {
	if err := requireTerminal(); err != nil {
		return false, err
	}

	confirmed := def
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%w: use --type and --yes to run without prompts", ErrNotInteractive)
	}
	return nil
}
