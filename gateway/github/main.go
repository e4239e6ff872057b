package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/github"
)

type Gateway struct {
	client *gh.Client
}

// New returns an unauthenticated GitHub gateway. A nil httpClient uses the default one.
func New(httpClient *http.Client) *Gateway {
	return &Gateway{
		client: gh.NewClient(httpClient),
	}
}

// NewWithClient wraps an existing client, e.g. one pointed at a test server
func NewWithClient(client *gh.Client) *Gateway {
	return &Gateway{client: client}
}

// GetLatestReleaseTag returns the tag of the newest published release of owner/repo
func (g *Gateway) GetLatestReleaseTag(ctx context.Context, owner string, repo string) (string, error) {
	release, _, err := g.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return release.GetTagName(), nil
}
