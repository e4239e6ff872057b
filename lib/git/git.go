package git

import (
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// Metadata is what a deployment can be pre-filled with from a checkout
type Metadata struct {
	RepoName string
	Branch   string
	Commit   string
}

var remoteRegex = regexp.MustCompile(`(?:(?:.*?@.*?\..*?:)|(?:https://.*?\..*?/))(?P<User>.*?)/(?P<Repo>.*?)\.git$`)

func execGit(path string, cmd ...string) (string, error) {
	args := append([]string{"-C", path}, cmd...)
	out, err := exec.Command("git", args...).Output()
	return strings.TrimSpace(string(out)), err
}

func IsRepo(path string) bool {
	_, err := execGit(path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// RepoName returns the repository name of the origin remote, falling back to
// the name of the directory
func RepoName(path string) (string, error) {
	if remote, err := execGit(path, "remote", "get-url", "origin"); err == nil && remote != "" {
		if !strings.HasSuffix(remote, ".git") {
			remote += ".git"
		}
		if match := remoteRegex.FindStringSubmatch(remote); match != nil {
			return match[remoteRegex.SubexpIndex("Repo")], nil
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}

func GetBranch(path string) (string, error) {
	return execGit(path, "rev-parse", "--abbrev-ref", "HEAD")
}

func GetCommit(path string) (string, error) {
	return execGit(path, "log", "-1", "--format=format:%h")
}

// GetMetadata collects what it can. A path outside a repository yields an
// empty Metadata.
func GetMetadata(path string) Metadata {
	if !IsRepo(path) {
		return Metadata{}
	}
	var md Metadata
	md.RepoName, _ = RepoName(path)
	if branch, err := GetBranch(path); err == nil && branch != "HEAD" {
		md.Branch = branch
	}
	md.Commit, _ = GetCommit(path)
	return md
}
