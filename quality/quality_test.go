package quality

import "testing"

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in   string
		want PackageQuality
		ok   bool
	}{
		{"CI", CI, true},
		{"Exploratory", Exploratory, true},
		{"Preview", Preview, true},
		{"ReleaseCandidate", ReleaseCandidate, true},
		{"Release", Release, true},
		{"None", None, true},
		{"release", None, false},
		{"RC", None, false},
		{"", None, false},
		{"Stable", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseQuality(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("ParseQuality(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestQualityIsValid(t *testing.T) {
	if None.IsValid() {
		t.Error("None should not be a valid tier")
	}
	for _, q := range AllQualities {
		if !q.IsValid() {
			t.Errorf("%s should be a valid tier", q)
		}
	}
}

func TestNewFilterSwapsBounds(t *testing.T) {
	f := NewFilter(Release, Preview)
	if f.Min() != Preview || f.Max() != Release {
		t.Fatalf("expected bounds swapped to Preview-Release, got %s", f)
	}
}

func TestExactMatchFilters(t *testing.T) {
	for _, q := range AllQualities {
		f := NewFilter(q, q)
		if !f.Accepts(q) {
			t.Errorf("filter %s should accept %s", f, q)
		}
		for _, other := range AllQualities {
			if other != q && f.Accepts(other) {
				t.Errorf("filter %s should reject %s", f, other)
			}
		}
	}
}

func TestNoneNeverAccepted(t *testing.T) {
	filters := []Filter{
		{},
		NewFilter(CI, Release),
		NewFilter(None, None),
		NewFilter(Exploratory, Preview),
		MustParseFilter(""),
	}
	for _, f := range filters {
		if f.Accepts(None) {
			t.Errorf("filter %s should never accept None", f)
		}
	}
}

func TestFilterAccepts(t *testing.T) {
	tests := []struct {
		filter   string
		accepted []PackageQuality
	}{
		{"", AllQualities},
		{"-", AllQualities},
		{"CI-Release", AllQualities},
		{"CI-", AllQualities},
		{"-Release", AllQualities},
		{"Release", []PackageQuality{Release}},
		{"Release-Release", []PackageQuality{Release}},
		{"-ReleaseCandidate", []PackageQuality{CI, Exploratory, Preview, ReleaseCandidate}},
		{"Exploratory-Preview", []PackageQuality{Exploratory, Preview}},
		{"Preview-", []PackageQuality{Preview, ReleaseCandidate, Release}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			f := MustParseFilter(tt.filter)
			want := make(map[PackageQuality]bool, len(tt.accepted))
			for _, q := range tt.accepted {
				want[q] = true
			}
			for _, q := range AllQualities {
				if got := f.Accepts(q); got != want[q] {
					t.Errorf("filter %q: Accepts(%s) = %v, want %v", tt.filter, q, got, want[q])
				}
			}
		})
	}
}

func TestParseFilterWhitespace(t *testing.T) {
	f, err := ParseFilter("  Exploratory - Preview\t")
	if err != nil {
		t.Fatalf("ParseFilter failed: %v", err)
	}
	if !f.Equal(NewFilter(Exploratory, Preview)) {
		t.Errorf("expected Exploratory-Preview, got %s", f)
	}

	unbounded, err := ParseFilter("   ")
	if err != nil {
		t.Fatalf("ParseFilter failed: %v", err)
	}
	if !unbounded.Equal(Filter{}) {
		t.Errorf("whitespace-only input should be unbounded, got %s", unbounded)
	}
}

func TestParseFilterErrors(t *testing.T) {
	tests := []string{
		"A-B-C",
		"CI-Release-",
		"--",
		"Bogus",
		"CI-Bogus",
		"Bogus-Release",
		"ci-release",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, ok := TryParseFilter(in); ok {
				t.Errorf("TryParseFilter(%q) should fail", in)
			}
			if _, err := ParseFilter(in); err == nil {
				t.Errorf("ParseFilter(%q) should fail", in)
			}
		})
	}
}

func TestMustParseFilterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParseFilter should panic on bad input")
		}
	}()
	MustParseFilter("not-a-quality")
}

func TestFilterRoundTrip(t *testing.T) {
	bounds := append([]PackageQuality{None}, AllQualities...)
	for _, min := range bounds {
		for _, max := range bounds {
			f := NewFilter(min, max)
			parsed, err := ParseFilter(f.String())
			if err != nil {
				t.Fatalf("ParseFilter(%q) failed: %v", f.String(), err)
			}
			if !parsed.Equal(f) {
				t.Errorf("round trip of %s gave %s", f, parsed)
			}
		}
	}
}

func TestFilterEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Filter
		want bool
	}{
		{"identical", NewFilter(Preview, Release), NewFilter(Preview, Release), true},
		{"irrelevant min None vs CI", NewFilter(None, Preview), NewFilter(CI, Preview), true},
		{"irrelevant max None vs Release", NewFilter(None, None), NewFilter(None, Release), true},
		{"both unbounded", Filter{}, NewFilter(CI, Release), true},
		{"unbounded None-Release vs zero", NewFilter(None, Release), Filter{}, true},
		{"swapped None upper bound is CI ceiling", NewFilter(CI, None), NewFilter(None, Release), false},
		{"different min", NewFilter(Preview, Release), NewFilter(Exploratory, Release), false},
		{"different max", NewFilter(CI, Preview), NewFilter(CI, ReleaseCandidate), false},
		{"bounded vs unbounded", NewFilter(Preview, Preview), Filter{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
			if tt.want && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal filters %s and %s should hash identically", tt.a, tt.b)
			}
		})
	}
}
