package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/github/go-spdx/v2/spdxexp"

	"github.com/git-pkgs/buildmeta/quality"
	"github.com/git-pkgs/buildmeta/version"
)

// DefaultURL is the base URL of the public NuGet v3 API.
const DefaultURL = "https://api.nuget.org/v3"

// Feed reads the registration index of a NuGet-style feed.
type Feed struct {
	baseURL string
	client  *Client
}

// New creates a feed rooted at baseURL. If baseURL is empty, DefaultURL is
// used; if client is nil, a default client is created.
func New(baseURL string, client *Client) *Feed {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if client == nil {
		client = NewClient()
	}
	return &Feed{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// PackageVersion is one published version of a package, classified by
// quality.
type PackageVersion struct {
	Version       version.SemVersion
	Quality       quality.PackageQuality
	PublishedAt   time.Time
	Listed        bool
	Licenses      string
	LicensesValid bool
}

// Registration index wire format.
type registrationResponse struct {
	Items []registrationPage `json:"items"`
}

type registrationPage struct {
	Items []registrationLeaf `json:"items"`
}

type registrationLeaf struct {
	CatalogEntry catalogEntry `json:"catalogEntry"`
}

type catalogEntry struct {
	ID                string `json:"id"`
	Version           string `json:"version"`
	Description       string `json:"description"`
	ProjectURL        string `json:"projectUrl"`
	LicenseExpression string `json:"licenseExpression"`
	Published         string `json:"published"`
	Listed            bool   `json:"listed"`
}

// Versions retrieves all published versions of a package, each classified by
// quality. License expressions are checked against the SPDX license list.
func (f *Feed) Versions(ctx context.Context, name string) ([]PackageVersion, error) {
	url := fmt.Sprintf("%s/registration5-semver1/%s/index.json", f.baseURL, strings.ToLower(name))

	var resp registrationResponse
	if err := f.client.GetJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	var out []PackageVersion
	for _, page := range resp.Items {
		for _, leaf := range page.Items {
			entry := leaf.CatalogEntry
			v := version.ParseSemVersion(entry.Version)
			pv := PackageVersion{
				Version:  v,
				Quality:  version.QualityOf(v),
				Listed:   entry.Listed,
				Licenses: entry.LicenseExpression,
			}
			if entry.Published != "" {
				if t, err := time.Parse(time.RFC3339, entry.Published); err == nil {
					pv.PublishedAt = t.UTC()
				}
			}
			if entry.LicenseExpression != "" {
				ok, _ := spdxexp.ValidateLicenses([]string{entry.LicenseExpression})
				pv.LicensesValid = ok
			}
			out = append(out, pv)
		}
	}
	return out, nil
}

// Best returns the highest listed version whose quality the filter accepts,
// or nil when no version qualifies.
func (f *Feed) Best(ctx context.Context, name string, filter quality.Filter) (*PackageVersion, error) {
	versions, err := f.Versions(ctx, name)
	if err != nil {
		return nil, err
	}

	var best *PackageVersion
	for i := range versions {
		pv := &versions[i]
		if !pv.Listed || !filter.Accepts(pv.Quality) {
			continue
		}
		if best == nil || pv.Version.Version().GreaterThan(best.Version.Version()) {
			best = pv
		}
	}
	return best, nil
}
