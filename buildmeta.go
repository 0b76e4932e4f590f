// Package buildmeta models build/release version metadata for packaging and
// CI tooling: a quality classification for packages, range filters over that
// classification, and the composite informational version string embedded in
// compiled artifacts.
//
// Basic usage:
//
//	import "github.com/git-pkgs/buildmeta"
//
//	filter := buildmeta.MustParseFilter("ReleaseCandidate-Release")
//	filter.Accepts(buildmeta.Preview) // false
//
//	iv := buildmeta.ParseInformationalVersion(text)
//	if iv.IsValid() {
//		fmt.Println(iv.SemVersion(), iv.CommitSHA())
//	}
//
// The feed subpackage resolves published package versions against a filter:
//
//	best, err := feed.New("", nil).Best(ctx, "CK.Core", filter)
package buildmeta

import (
	"github.com/git-pkgs/buildmeta/feed"
	"github.com/git-pkgs/buildmeta/quality"
	"github.com/git-pkgs/buildmeta/version"
)

// Re-export types from quality
type (
	// PackageQuality is the maturity classification of a package version.
	PackageQuality = quality.PackageQuality

	// Filter is an immutable min/max range over the quality scale.
	Filter = quality.Filter
)

// Re-export types from version
type (
	// SemVersion is a semantic version value whose parsing never fails.
	SemVersion = version.SemVersion

	// InformationalVersion is the structured form of the composite version
	// text embedded in compiled artifacts.
	InformationalVersion = version.InformationalVersion
)

// Re-export types from feed
type (
	// Feed reads the registration index of a NuGet-style feed.
	Feed = feed.Feed

	// FeedClient is an HTTP client with retry logic for registration feeds.
	FeedClient = feed.Client

	// BreakerFeed reads registration indexes through per-host circuit
	// breakers.
	BreakerFeed = feed.BreakerFeed

	// PackageVersion is one published version of a package, classified by
	// quality.
	PackageVersion = feed.PackageVersion
)

// Re-export the quality scale
const (
	None             = quality.None
	CI               = quality.CI
	Exploratory      = quality.Exploratory
	Preview          = quality.Preview
	ReleaseCandidate = quality.ReleaseCandidate
	Release          = quality.Release
)

// Re-export zero constants
const (
	ZeroSemVersion      = version.ZeroSemVersion
	ZeroAssemblyVersion = version.ZeroAssemblyVersion
	ZeroFileVersion     = version.ZeroFileVersion
	ZeroCommitSHA       = version.ZeroCommitSHA
)

var (
	// ZeroCommitDate is the minimum representable timestamp, UTC.
	ZeroCommitDate = version.ZeroCommitDate

	// ZeroInformationalVersion is the formatted combination of the zero
	// constants.
	ZeroInformationalVersion = version.ZeroInformationalVersion

	// Zero is the canonical "no information" informational version.
	Zero = version.Zero
)

// Quality scale functions
var (
	ParseQuality = quality.ParseQuality
	QualityOf    = version.QualityOf
)

// Filter functions
var (
	NewFilter       = quality.NewFilter
	ParseFilter     = quality.ParseFilter
	TryParseFilter  = quality.TryParseFilter
	MustParseFilter = quality.MustParseFilter
)

// Informational version functions
var (
	ParseInformationalVersion = version.ParseInformationalVersion
	BuildInformationalVersion = version.BuildInformationalVersion
	ParseSemVersion           = version.ParseSemVersion
)

// Feed constructors
var (
	NewFeed        = feed.New
	NewFeedClient  = feed.NewClient
	NewBreakerFeed = feed.NewBreakerFeed
)

// Re-export feed errors
var (
	ErrNotFound     = feed.ErrNotFound
	ErrRateLimited  = feed.ErrRateLimited
	ErrUpstreamDown = feed.ErrUpstreamDown
)
