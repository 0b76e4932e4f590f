package feed

import (
	"context"
	"fmt"

	packageurl "github.com/package-url/packageurl-go"

	"github.com/git-pkgs/buildmeta/quality"
)

// FromPURL creates a feed from a Package URL and returns the parsed
// components: the feed, the package name, and the version (empty if not in
// the PURL). A repository_url qualifier selects a private feed; otherwise
// the default public feed is used. Only nuget PURLs are supported.
func FromPURL(purlStr string, client *Client) (*Feed, string, string, error) {
	p, err := packageurl.FromString(purlStr)
	if err != nil {
		return nil, "", "", err
	}
	if p.Type != "nuget" {
		return nil, "", "", fmt.Errorf("unsupported package type %q in %s", p.Type, purlStr)
	}

	baseURL := p.Qualifiers.Map()["repository_url"]
	name := p.Name
	if p.Namespace != "" {
		name = p.Namespace + "/" + p.Name
	}
	return New(baseURL, client), name, p.Version, nil
}

// VersionsFromPURL retrieves the published versions of the package named by
// a PURL.
func VersionsFromPURL(ctx context.Context, purlStr string, client *Client) ([]PackageVersion, error) {
	f, name, _, err := FromPURL(purlStr, client)
	if err != nil {
		return nil, err
	}
	return f.Versions(ctx, name)
}

// BestFromPURL returns the highest listed version of the package named by a
// PURL whose quality the filter accepts, or nil when no version qualifies.
func BestFromPURL(ctx context.Context, purlStr string, filter quality.Filter, client *Client) (*PackageVersion, error) {
	f, name, _, err := FromPURL(purlStr, client)
	if err != nil {
		return nil, err
	}
	return f.Best(ctx, name, filter)
}
