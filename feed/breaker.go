package feed

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/git-pkgs/buildmeta/quality"
)

// BreakerFeed reads registration indexes through per-host circuit breakers,
// so a dead feed stops consuming retries quickly.
type BreakerFeed struct {
	client   *Client
	breakers map[string]*circuit.Breaker
	mu       sync.RWMutex
}

// NewBreakerFeed creates a circuit-breaking accessor over any number of
// feeds. If client is nil, a default client is created.
func NewBreakerFeed(client *Client) *BreakerFeed {
	if client == nil {
		client = NewClient()
	}
	return &BreakerFeed{
		client:   client,
		breakers: make(map[string]*circuit.Breaker),
	}
}

// getBreaker returns or creates a circuit breaker for the given host.
func (bf *BreakerFeed) getBreaker(host string) *circuit.Breaker {
	bf.mu.RLock()
	breaker, exists := bf.breakers[host]
	bf.mu.RUnlock()

	if exists {
		return breaker
	}

	bf.mu.Lock()
	defer bf.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists := bf.breakers[host]; exists {
		return breaker
	}

	// Trips after 5 consecutive failures, reopens on an exponential schedule
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	opts := &circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(5),
	}
	breaker = circuit.NewBreakerWithOptions(opts)

	bf.breakers[host] = breaker
	return breaker
}

// Versions retrieves the versions of a package from the feed at feedURL.
func (bf *BreakerFeed) Versions(ctx context.Context, feedURL, name string) ([]PackageVersion, error) {
	host := extractHost(feedURL)
	breaker := bf.getBreaker(host)

	if !breaker.Ready() {
		return nil, fmt.Errorf("circuit breaker open for feed %s: %w", host, ErrUpstreamDown)
	}

	var versions []PackageVersion
	err := breaker.Call(func() error {
		var callErr error
		versions, callErr = New(feedURL, bf.client).Versions(ctx, name)
		return callErr
	}, 0)

	if err != nil {
		return nil, err
	}
	return versions, nil
}

// Best returns the highest listed version from the feed at feedURL whose
// quality the filter accepts, or nil when no version qualifies.
func (bf *BreakerFeed) Best(ctx context.Context, feedURL, name string, filter quality.Filter) (*PackageVersion, error) {
	host := extractHost(feedURL)
	breaker := bf.getBreaker(host)

	if !breaker.Ready() {
		return nil, fmt.Errorf("circuit breaker open for feed %s: %w", host, ErrUpstreamDown)
	}

	var best *PackageVersion
	err := breaker.Call(func() error {
		var callErr error
		best, callErr = New(feedURL, bf.client).Best(ctx, name, filter)
		return callErr
	}, 0)

	if err != nil {
		return nil, err
	}
	return best, nil
}

// extractHost extracts a host identifier from a feed URL for breaker grouping.
func extractHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		// Fallback to simple truncation
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}

// BreakerState returns the current state of circuit breakers (for health
// checks).
func (bf *BreakerFeed) BreakerState() map[string]string {
	bf.mu.RLock()
	defer bf.mu.RUnlock()

	states := make(map[string]string)
	for host, breaker := range bf.breakers {
		if breaker.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}
