package release

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var ErrUnknownBumpType = errors.New("unknown bump type")

// BumpType is the kind of version increment requested by the operator.
type BumpType string

const (
	// Hotfix is a patch-level increment.
	Hotfix BumpType = "hotfix"
	Minor  BumpType = "minor"
	Major  BumpType = "major"
)

// BumpTypes lists the bump types in the order they are offered.
var BumpTypes = []BumpType{Hotfix, Minor, Major}

func (b BumpType) String() string {
	return string(b)
}

// ParseBumpType parses a bump type name, case-insensitively.
func ParseBumpType(s string) (BumpType, error) {
	b := BumpType(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case Hotfix, Minor, Major:
		return b, nil
	}
	return "", fmt.Errorf("%w %q (want one of hotfix, minor, major)", ErrUnknownBumpType, s)
}

// Bump returns v incremented according to b. Pre-release and build metadata
// are dropped. A pre-release hotfix yields its release version
// (1.2.3-rc.1 becomes 1.2.3).
func Bump(v *semver.Version, b BumpType) (*semver.Version, error) {
	var next semver.Version
	switch b {
	case Hotfix:
		next = v.IncPatch()
	case Minor:
		next = v.IncMinor()
	case Major:
		next = v.IncMajor()
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBumpType, string(b))
	}
	return &next, nil
}
