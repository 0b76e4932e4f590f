package version

import (
	"fmt"
	"regexp"
	"time"
)

// Canonical zero values for use as defaults in build configuration.
const (
	// ZeroSemVersion is the all-zero semantic version with a "0" prerelease
	// label, ordered below every other 0.0.0 prerelease.
	ZeroSemVersion = "0.0.0-0"

	// ZeroAssemblyVersion is the zero assembly-style version.
	ZeroAssemblyVersion = "0.0.0"

	// ZeroFileVersion is the zero file-style version.
	ZeroFileVersion = "0.0.0.0"

	// ZeroCommitSHA is the 40-character all-zero commit hash.
	ZeroCommitSHA = "0000000000000000000000000000000000000000"
)

// ZeroCommitDate is the minimum representable timestamp, UTC.
var ZeroCommitDate = time.Time{}

// commitDateLayout renders a fixed, locale-independent, lexically sortable
// UTC timestamp. The trailing Z is a literal.
const commitDateLayout = "2006-01-02 15:04:05Z"

// The four payload fields are unconstrained by the grammar itself; their
// validity is judged after extraction.
var informationalRx = regexp.MustCompile(`^(.+?) \((.+?)\) - SHA1: (.*?) - CommitDate: (.*)$`)

// InformationalVersion is the structured form of the composite version text
// embedded in compiled artifacts: a semantic version, a package-manager
// version, a commit hash and a commit timestamp.
//
// Instances are immutable. A failed or partial parse is still a value: every
// successfully extracted field stays available and IsValid reports false.
type InformationalVersion struct {
	originalText string
	semVersion   SemVersion
	nugetVersion SemVersion
	commitSHA    string
	commitDate   time.Time
	valid        bool
}

// ParseInformationalVersion parses informational version text. It never
// fails: text that does not match the grammar (including the empty "no data"
// case) yields an instance that keeps the original text, leaves every derived
// field at its zero value and reports IsValid false.
func ParseInformationalVersion(text string) InformationalVersion {
	iv := InformationalVersion{originalText: text}
	m := informationalRx.FindStringSubmatch(text)
	if m == nil {
		return iv
	}
	iv.semVersion = ParseSemVersion(m[1])
	iv.nugetVersion = ParseSemVersion(m[2])
	iv.commitSHA = m[3]
	date, dateErr := time.Parse(commitDateLayout, m[4])
	if dateErr == nil {
		iv.commitDate = date.UTC()
	}
	iv.valid = iv.semVersion.IsValid() &&
		iv.nugetVersion.IsValid() &&
		isCommitSHA(m[3]) &&
		dateErr == nil
	return iv
}

// OriginalText returns the raw text the instance was parsed from.
func (iv InformationalVersion) OriginalText() string { return iv.originalText }

// SemVersion returns the embedded semantic version.
func (iv InformationalVersion) SemVersion() SemVersion { return iv.semVersion }

// NuGetVersion returns the embedded package-manager version.
func (iv InformationalVersion) NuGetVersion() SemVersion { return iv.nugetVersion }

// CommitSHA returns the extracted commit hash text, which may be malformed
// when IsValid is false.
func (iv InformationalVersion) CommitSHA() string { return iv.commitSHA }

// CommitDate returns the commit timestamp, or ZeroCommitDate when absent.
func (iv InformationalVersion) CommitDate() time.Time { return iv.commitDate }

// IsValid reports whether all four embedded fields parsed: both versions
// valid, the hash exactly 40 hexadecimal characters and the date well formed.
func (iv InformationalVersion) IsValid() bool { return iv.valid }

// String returns the original text.
func (iv InformationalVersion) String() string { return iv.originalText }

// BuildInformationalVersion formats the canonical informational version text
// from validated components. Both version texts must be non-empty, the hash
// exactly 40 hexadecimal characters and the date expressed in UTC.
func BuildInformationalVersion(semVer, nugetVer, commitSHA string, commitDate time.Time) (string, error) {
	if semVer == "" {
		return "", fmt.Errorf("semantic version text must not be empty")
	}
	if nugetVer == "" {
		return "", fmt.Errorf("nuget version text must not be empty")
	}
	if !isCommitSHA(commitSHA) {
		return "", fmt.Errorf("commit SHA must be 40 hexadecimal characters, got %q", commitSHA)
	}
	if commitDate.Location() != time.UTC {
		return "", fmt.Errorf("commit date must be expressed in UTC, got zone %s", commitDate.Location())
	}
	return fmt.Sprintf("%s (%s) - SHA1: %s - CommitDate: %s",
		semVer, nugetVer, commitSHA, commitDate.Format(commitDateLayout)), nil
}

// ZeroInformationalVersion is the formatted combination of the zero
// constants: "no information", not "invalid".
var ZeroInformationalVersion = fmt.Sprintf("%s (%s) - SHA1: %s - CommitDate: %s",
	ZeroSemVersion, ZeroSemVersion, ZeroCommitSHA, ZeroCommitDate.Format(commitDateLayout))

// Zero is the canonical "no information" instance. It is syntactically valid.
var Zero = ParseInformationalVersion(ZeroInformationalVersion)

func isCommitSHA(s string) bool {
	if len(s) != 40 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
