package update

import (
	"testing"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

func TestNewUpdateInfo(t *testing.T) {
	latest := &selfupdate.Release{
		Version:      semver.MustParse("0.3.0"),
		URL:          "https://github.com/jfox85/rsinit/releases/tag/v0.3.0",
		ReleaseNotes: "Adds the inspect command",
	}

	tests := []struct {
		name          string
		current       string
		wantAvailable bool
	}{
		{name: "older_release", current: "0.2.1", wantAvailable: true},
		{name: "same_release", current: "0.3.0", wantAvailable: false},
		{name: "newer_local_build", current: "0.4.0", wantAvailable: false},
		{name: "dev_build", current: "dev", wantAvailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, _ := parseVersion(tt.current)
			info := newUpdateInfo(tt.current, current, latest)

			if info.Available != tt.wantAvailable {
				t.Errorf("Available = %v, want %v", info.Available, tt.wantAvailable)
			}
			if info.CurrentVersion != tt.current {
				t.Errorf("CurrentVersion = %q, want %q", info.CurrentVersion, tt.current)
			}
			if info.LatestVersion != "0.3.0" {
				t.Errorf("LatestVersion = %q, want 0.3.0", info.LatestVersion)
			}
			if info.ReleaseURL != latest.URL {
				t.Errorf("ReleaseURL = %q, want %q", info.ReleaseURL, latest.URL)
			}
		})
	}
}
