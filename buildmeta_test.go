package buildmeta_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/git-pkgs/buildmeta"
)

func TestFilterThroughRootPackage(t *testing.T) {
	filter := buildmeta.MustParseFilter("ReleaseCandidate-Release")

	if filter.Accepts(buildmeta.Preview) {
		t.Error("Preview should be rejected")
	}
	if !filter.Accepts(buildmeta.ReleaseCandidate) || !filter.Accepts(buildmeta.Release) {
		t.Error("ReleaseCandidate and Release should be accepted")
	}
	if filter.Accepts(buildmeta.None) {
		t.Error("None should never be accepted")
	}
}

func TestInformationalVersionThroughRootPackage(t *testing.T) {
	sha := "ffee0011223344556677889900aabbccddeeff00"
	date := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	text, err := buildmeta.BuildInformationalVersion("2.4.0", "2.4.0", sha, date)
	if err != nil {
		t.Fatalf("BuildInformationalVersion failed: %v", err)
	}

	iv := buildmeta.ParseInformationalVersion(text)
	if !iv.IsValid() {
		t.Fatalf("expected valid syntax for %q", text)
	}
	if got := buildmeta.QualityOf(iv.SemVersion()); got != buildmeta.Release {
		t.Errorf("quality = %s, want Release", got)
	}
}

func TestBreakerFeedThroughRootPackage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [{"items": [{"catalogEntry": {"version": "1.4.0", "listed": true}}]}]}`))
	}))
	defer server.Close()

	var bf *buildmeta.BreakerFeed = buildmeta.NewBreakerFeed(buildmeta.NewFeedClient())
	best, err := bf.Best(context.Background(), server.URL, "pkg", buildmeta.Filter{})
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if best == nil || best.Version.Text() != "1.4.0" {
		t.Fatalf("Best = %v, want 1.4.0", best)
	}
}

func TestZeroThroughRootPackage(t *testing.T) {
	if !buildmeta.Zero.IsValid() {
		t.Error("Zero should be valid")
	}
	if buildmeta.Zero.OriginalText() != buildmeta.ZeroInformationalVersion {
		t.Error("Zero should parse from the zero text")
	}
	if buildmeta.ZeroAssemblyVersion != "0.0.0" || buildmeta.ZeroFileVersion != "0.0.0.0" {
		t.Error("unexpected zero version constants")
	}
}
