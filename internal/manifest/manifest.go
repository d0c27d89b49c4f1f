// Package manifest reads the project version from a JSON manifest such as package.json.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrMissingVersion is returned when the manifest has no string "version" field.
	ErrMissingVersion = errors.New("manifest has no version")
	// ErrInvalidVersion is returned when the version is not a valid semantic version.
	ErrInvalidVersion = errors.New("invalid version")
)

// ReadVersion reads path and returns its top-level "version" field as a semantic version.
func ReadVersion(path string) (*semver.Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	raw, ok := doc["version"]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingVersion)
	}
	var version *string
	if err := json.Unmarshal(raw, &version); err != nil || version == nil {
		return nil, fmt.Errorf("%s: %w: %s", path, ErrMissingVersion, raw)
	}

	v, err := ParseVersion(*version)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ParseVersion validates s as a strict MAJOR.MINOR.PATCH[-PRE][+BUILD] version.
// Surrounding whitespace and a single leading "=" or "v" are accepted.
func ParseVersion(s string) (*semver.Version, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "=")
	clean = strings.TrimPrefix(clean, "v")

	v, err := semver.StrictNewVersion(clean)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidVersion, s, err)
	}
	return v, nil
}
