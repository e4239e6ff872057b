package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/deployboard/cli/gateway/github"
	gh "github.com/google/go-github/github"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *github.Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gh.NewClient(srv.Client())
	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL
	return github.NewWithClient(client)
}

func TestGetLatestReleaseTag(t *testing.T) {
	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/deployboard/cli/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.4.0"}`))
	})

	tag, err := g.GetLatestReleaseTag(context.Background(), "deployboard", "cli")
	require.NoError(t, err)
	require.Equal(t, "v1.4.0", tag)
}

func TestGetLatestReleaseTagNotFound(t *testing.T) {
	g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := g.GetLatestReleaseTag(context.Background(), "deployboard", "cli")
	require.Error(t, err)
}
