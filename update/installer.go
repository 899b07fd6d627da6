package update

import (
	"fmt"
	"io"

	"github.com/jfox85/rsinit/version"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// PerformUpdate downloads the latest release and replaces the running binary
func PerformUpdate(w io.Writer, force bool) error {
	currentVersion, ok := parseVersion(version.Version)
	if !ok && !force {
		return fmt.Errorf("cannot update development build %q without --force", version.Version)
	}

	latest, found, err := selfupdate.DetectLatest(GitHubRepo)
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release information found")
	}

	if latest.Version.LTE(currentVersion) && !force {
		return fmt.Errorf("you are already running the latest version (%s)", currentVersion)
	}

	release, err := selfupdate.UpdateSelf(currentVersion, GitHubRepo)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintf(w, "✅ Successfully updated to %s!\n", release.Version)

	if release.ReleaseNotes != "" {
		fmt.Fprintln(w, "\n📋 Release Notes:")
		fmt.Fprintln(w, release.ReleaseNotes)
	}

	return nil
}
