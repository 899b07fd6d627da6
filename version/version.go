package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Set at build time with -ldflags "-X github.com/jfox85/rsinit/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)

// ProjectURL is where releases are published.
const ProjectURL = "https://github.com/jfox85/rsinit"

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Arch      string `json:"arch"`
	OS        string `json:"os"`
}

// Get returns version information
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Arch:      runtime.GOARCH,
		OS:        runtime.GOOS,
	}
}

func known(s string) bool {
	return s != "" && s != "unknown"
}

// ShortCommit returns the first seven characters of the commit, or "" when unknown.
func (i Info) ShortCommit() string {
	if !known(i.GitCommit) {
		return ""
	}
	if len(i.GitCommit) > 7 {
		return i.GitCommit[:7]
	}
	return i.GitCommit
}

// String returns a formatted version string
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rsinit version %s", i.Version)

	if commit := i.ShortCommit(); commit != "" {
		fmt.Fprintf(&b, " (%s)", commit)
	}
	if known(i.BuildDate) {
		fmt.Fprintf(&b, " built %s", i.BuildDate)
	}

	return b.String()
}

// Detailed returns detailed version information
func (i Info) Detailed() string {
	return fmt.Sprintf(`rsinit version information:
  Version:    %s
  Git commit: %s
  Build date: %s
  Go version: %s
  OS/Arch:    %s/%s`,
		i.Version,
		i.GitCommit,
		i.BuildDate,
		i.GoVersion,
		i.OS,
		i.Arch,
	)
}

// UserAgent identifies rsinit to HTTP services.
func (i Info) UserAgent() string {
	return fmt.Sprintf("rsinit/%s (%s)", i.Version, ProjectURL)
}
