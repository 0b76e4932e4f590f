// Package quality defines the package quality scale used by packaging and CI
// tooling, and range filters over it.
//
// A package version carries one of five ranked quality tiers, from CI (lowest)
// to Release (highest). None is the sentinel "unspecified" value: it sits
// outside the ranked scale and never satisfies a filter.
package quality

import (
	"fmt"
	"strings"
	"unicode"
)

// PackageQuality is the maturity classification of a package version.
type PackageQuality int

const (
	// None means the quality is unspecified. It is not a ranked tier.
	None PackageQuality = iota
	// CI is a continuous-integration build, the lowest ranked tier.
	CI
	// Exploratory is an experimental build.
	Exploratory
	// Preview is a pre-release intended for early adopters.
	Preview
	// ReleaseCandidate is a build considered ready for release pending validation.
	ReleaseCandidate
	// Release is an official release, the highest ranked tier.
	Release
)

var qualityNames = [...]string{
	"None",
	"CI",
	"Exploratory",
	"Preview",
	"ReleaseCandidate",
	"Release",
}

// AllQualities lists the five ranked tiers in ascending order.
var AllQualities = []PackageQuality{CI, Exploratory, Preview, ReleaseCandidate, Release}

// String returns the quality name.
func (q PackageQuality) String() string {
	if q < None || q > Release {
		return fmt.Sprintf("PackageQuality(%d)", int(q))
	}
	return qualityNames[q]
}

// IsValid reports whether q is one of the five ranked tiers.
// The None sentinel is not valid.
func (q PackageQuality) IsValid() bool {
	return q >= CI && q <= Release
}

// ParseQuality matches a quality name. Matching is case sensitive.
func ParseQuality(s string) (PackageQuality, bool) {
	for i, name := range qualityNames {
		if s == name {
			return PackageQuality(i), true
		}
	}
	return None, false
}

// Filter is an immutable min/max range over the quality scale.
//
// A bound equal to None or to the scale's own floor (CI for min) or ceiling
// (Release for max) carries no restriction on that side. The zero Filter is
// fully unbounded: it accepts every ranked tier.
type Filter struct {
	min PackageQuality
	max PackageQuality
}

// NewFilter builds a filter from two bounds. If min is above max the two are
// swapped, so construction never fails.
func NewFilter(min, max PackageQuality) Filter {
	if min > max {
		min, max = max, min
	}
	return Filter{min: min, max: max}
}

// Min returns the raw lower bound.
func (f Filter) Min() PackageQuality { return f.min }

// Max returns the raw upper bound.
func (f Filter) Max() PackageQuality { return f.max }

// HasMin reports whether the lower bound restricts anything: true only when
// min is a ranked tier above the scale's floor.
func (f Filter) HasMin() bool {
	return f.min.IsValid() && f.min != CI
}

// HasMax reports whether the upper bound restricts anything: true only when
// max is a ranked tier below the scale's ceiling.
func (f Filter) HasMax() bool {
	return f.max.IsValid() && f.max != Release
}

// Accepts reports whether q passes the filter. The None sentinel is never
// accepted, even by the unbounded filter.
func (f Filter) Accepts(q PackageQuality) bool {
	if !q.IsValid() {
		return false
	}
	if f.HasMin() && q < f.min {
		return false
	}
	if f.HasMax() && q > f.max {
		return false
	}
	return true
}

// String returns the canonical "<min>-<max>" form. It always round-trips
// through ParseFilter to a filter equal to f.
func (f Filter) String() string {
	return f.min.String() + "-" + f.max.String()
}

// Equal reports whether two filters behave identically. A side with no
// relevant bound compares equal regardless of the raw value stored there,
// so NewFilter(None, Release), NewFilter(CI, Release) and the zero Filter
// are all equal.
func (f Filter) Equal(o Filter) bool {
	if f.HasMin() != o.HasMin() || f.HasMax() != o.HasMax() {
		return false
	}
	if f.HasMin() && f.min != o.min {
		return false
	}
	if f.HasMax() && f.max != o.max {
		return false
	}
	return true
}

// Hash returns a value consistent with Equal: a side with no relevant bound
// contributes nothing.
func (f Filter) Hash() uint64 {
	var h uint64
	if f.HasMin() {
		h = uint64(f.min)
	}
	if f.HasMax() {
		h |= uint64(f.max) << 8
	}
	return h
}

// TryParseFilter parses filter text, reporting false on bad syntax.
//
// All whitespace is stripped, then the text is split on "-". A single token
// names an exact-match filter (min = max); an empty input is the unbounded
// filter. With two tokens, an empty left side defaults to CI and an empty
// right side to Release, so "", "-", "CI-Release", "CI-" and "-Release" all
// mean the unbounded filter. Any other token count fails.
func TryParseFilter(s string) (Filter, bool) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	tokens := strings.Split(s, "-")
	switch len(tokens) {
	case 1:
		if tokens[0] == "" {
			return Filter{}, true
		}
		q, ok := ParseQuality(tokens[0])
		if !ok {
			return Filter{}, false
		}
		return NewFilter(q, q), true
	case 2:
		min := CI
		if tokens[0] != "" {
			q, ok := ParseQuality(tokens[0])
			if !ok {
				return Filter{}, false
			}
			min = q
		}
		max := Release
		if tokens[1] != "" {
			q, ok := ParseQuality(tokens[1])
			if !ok {
				return Filter{}, false
			}
			max = q
		}
		return NewFilter(min, max), true
	default:
		return Filter{}, false
	}
}

// ParseFilter is the strict form of TryParseFilter: malformed text is an
// error. Empty or whitespace-only text is the unbounded filter, not an error.
func ParseFilter(s string) (Filter, error) {
	f, ok := TryParseFilter(s)
	if !ok {
		return Filter{}, fmt.Errorf("invalid quality filter %q", s)
	}
	return f, nil
}

// MustParseFilter is ParseFilter for filter text known at compile time.
// It panics on malformed text.
func MustParseFilter(s string) Filter {
	f, err := ParseFilter(s)
	if err != nil {
		panic(err)
	}
	return f
}
