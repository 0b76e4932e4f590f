// Package version provides semantic version values and the composite
// informational version string embedded in compiled artifacts.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/git-pkgs/buildmeta/quality"
)

// SemVersion is a semantic version that is always representable: parsing
// never fails, and unparseable input is carried along with IsValid reporting
// false. The zero SemVersion is the empty, invalid version.
type SemVersion struct {
	text string
	v    *semver.Version
}

// ParseSemVersion parses version text. It never fails: bad input yields an
// invalid SemVersion that still remembers its raw text.
func ParseSemVersion(text string) SemVersion {
	v, err := semver.NewVersion(text)
	if err != nil {
		return SemVersion{text: text}
	}
	return SemVersion{text: text, v: v}
}

// IsValid reports whether the raw text parsed as a semantic version.
func (s SemVersion) IsValid() bool { return s.v != nil }

// Text returns the raw text the value was parsed from.
func (s SemVersion) Text() string { return s.text }

// String returns the canonical form for valid versions and echoes the raw
// text back otherwise.
func (s SemVersion) String() string {
	if s.v != nil {
		return s.v.String()
	}
	return s.text
}

// Version returns the parsed version, or nil when invalid.
func (s SemVersion) Version() *semver.Version { return s.v }

// Prerelease returns the prerelease label of a valid version, or "".
func (s SemVersion) Prerelease() string {
	if s.v == nil {
		return ""
	}
	return s.v.Prerelease()
}

// Equal compares two values: valid pairs by canonical version, anything else
// by raw text.
func (s SemVersion) Equal(o SemVersion) bool {
	if s.v != nil && o.v != nil {
		return s.v.Equal(o.v)
	}
	return s.IsValid() == o.IsValid() && s.text == o.text
}

// QualityOf classifies a version by its prerelease label: no label is an
// official Release, "rc" a ReleaseCandidate, "alpha"/"beta"/"pre"/"preview"
// a Preview, "ci" a CI build, any other label Exploratory. Invalid versions
// have no quality.
func QualityOf(v SemVersion) quality.PackageQuality {
	if !v.IsValid() {
		return quality.None
	}
	pre := v.Prerelease()
	if pre == "" {
		return quality.Release
	}
	label := strings.ToLower(pre)
	if i := strings.IndexAny(label, ".-"); i >= 0 {
		label = label[:i]
	}
	label = strings.TrimRight(label, "0123456789")
	switch label {
	case "rc":
		return quality.ReleaseCandidate
	case "alpha", "beta", "pre", "preview":
		return quality.Preview
	case "ci":
		return quality.CI
	default:
		return quality.Exploratory
	}
}
