// Package registry looks up crate metadata on crates.io.
package registry

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/go-resty/resty/v2"
	"github.com/jfox85/rsinit/version"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

// Crate is the subset of the crates.io crate record rsinit uses.
type Crate struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	MaxVersion       string `json:"max_version"`
	MaxStableVersion string `json:"max_stable_version"`
}

type crateResponse struct {
	Crate Crate `json:"crate"`
}

// Client talks to the crates.io API
type Client struct {
	client  *resty.Client
	baseURL string
}

// NewClient creates a client for baseURL, falling back to crates.io
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetTimeout(10 * time.Second)
	// crates.io rejects requests without a descriptive user agent
	client.SetHeader("User-Agent", version.Get().UserAgent())
	client.SetHeader("Accept", "application/json")

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Crate fetches the registry record for name
func (c *Client) Crate(ctx context.Context, name string) (*Crate, error) {
	var result crateResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(c.baseURL + "/crates/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch crate %s: %w", name, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("crate %s not found", name)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("crates.io returned status %d for %s: %s", resp.StatusCode(), name, resp.String())
	}

	return &result.Crate, nil
}

// LatestVersion returns the newest stable version of name, or the newest
// version of any kind when the crate has no stable release.
func (c *Client) LatestVersion(ctx context.Context, name string) (string, error) {
	crate, err := c.Crate(ctx, name)
	if err != nil {
		return "", err
	}

	latest := crate.MaxStableVersion
	if latest == "" {
		latest = crate.MaxVersion
	}

	if _, err := semver.Parse(latest); err != nil {
		return "", fmt.Errorf("crate %s has invalid version %q: %w", name, latest, err)
	}

	return latest, nil
}
