package update

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/jfox85/rsinit/version"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// GitHubRepo is the repository releases are published to
const GitHubRepo = "jfox85/rsinit"

// UpdateInfo contains information about an available update
type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	ReleaseNotes   string
	ReleaseURL     string
	Available      bool
}

// parseVersion parses a release tag. Development builds (commit hashes,
// "dev") parse as 0.0.0 so that any release is considered newer.
func parseVersion(v string) (semver.Version, bool) {
	parsed, err := semver.Parse(strings.TrimPrefix(v, "v"))
	if err != nil {
		return semver.Version{}, false
	}
	return parsed, true
}

// CheckForUpdates checks GitHub for a newer version
func CheckForUpdates() (*UpdateInfo, error) {
	currentVersion, _ := parseVersion(version.Version)

	latest, found, err := selfupdate.DetectLatest(GitHubRepo)
	if err != nil {
		return nil, fmt.Errorf("checking for updates: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("no release information found")
	}

	return newUpdateInfo(version.Version, currentVersion, latest), nil
}

func newUpdateInfo(display string, current semver.Version, latest *selfupdate.Release) *UpdateInfo {
	return &UpdateInfo{
		CurrentVersion: display,
		LatestVersion:  latest.Version.String(),
		ReleaseNotes:   latest.ReleaseNotes,
		ReleaseURL:     latest.URL,
		Available:      latest.Version.GT(current),
	}
}
