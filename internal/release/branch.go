package release

// Prefixes holds the branch name prefixes per bump kind.
type Prefixes struct {
	Release string
	Hotfix  string
}

// BranchName returns "<prefix>/<version>" where the prefix is Hotfix for
// hotfix bumps and Release otherwise.
func (p Prefixes) BranchName(b BumpType, version string) string {
	prefix := p.Release
	if b == Hotfix {
		prefix = p.Hotfix
	}
	return prefix + "/" + version
}
