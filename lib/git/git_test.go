package git_test

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/deployboard/cli/lib/git"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
}

func TestMetadataOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	require.Equal(t, git.Metadata{}, git.GetMetadata(t.TempDir()))
}

func TestMetadataFromCheckout(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := filepath.Join(t.TempDir(), "checkout")
	run(t, filepath.Dir(dir), "init", "-q", dir)
	run(t, dir, "symbolic-ref", "HEAD", "refs/heads/feature/login")
	run(t, dir, "remote", "add", "origin", "git@github.com:acme/frontend-app.git")
	run(t, dir, "-c", "user.name=Test", "-c", "user.email=test@example.com", "commit", "-q", "--allow-empty", "-m", "init")

	md := git.GetMetadata(dir)
	require.Equal(t, "frontend-app", md.RepoName)
	require.Equal(t, "feature/login", md.Branch)
	require.NotEmpty(t, md.Commit)
}

func TestRepoNameFallsBackToDirectory(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := filepath.Join(t.TempDir(), "backend-api")
	run(t, filepath.Dir(dir), "init", "-q", dir)

	name, err := git.RepoName(dir)
	require.NoError(t, err)
	require.Equal(t, "backend-api", name)
}
