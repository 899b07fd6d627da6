package update

import (
	"os"
	"path/filepath"
	"strings"
)

// InstallMethod represents how rsinit was installed
type InstallMethod string

const (
	InstallMethodHomebrew  InstallMethod = "homebrew"
	InstallMethodGoInstall InstallMethod = "go-install"
	InstallMethodCargo     InstallMethod = "cargo-bin"
	InstallMethodManual    InstallMethod = "manual"
	InstallMethodUnknown   InstallMethod = "unknown"
)

// DetectInstallMethod tries to determine how the running binary was installed
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallMethodUnknown
	}

	exePath, err := filepath.EvalSymlinks(exe)
	if err != nil {
		exePath = exe
	}

	link, _ := os.Readlink(exe)
	return classifyPath(exePath, link)
}

// classifyPath maps a resolved executable path (and the symlink target it was
// reached through, if any) to an install method.
func classifyPath(exePath, link string) InstallMethod {
	switch {
	case strings.Contains(exePath, "/Cellar/rsinit"), strings.Contains(link, "/Cellar/"):
		return InstallMethodHomebrew
	case strings.Contains(exePath, "/go/bin/"):
		return InstallMethodGoInstall
	case strings.Contains(exePath, "/.cargo/bin/"):
		// Installed next to cargo; self-update still works, the binary is ours
		return InstallMethodCargo
	default:
		return InstallMethodManual
	}
}

// CanSelfUpdate returns true if the installation method supports self-update
func CanSelfUpdate() bool {
	return DetectInstallMethod() != InstallMethodHomebrew
}

// GetUpdateInstructions returns update instructions for the current install
func GetUpdateInstructions() string {
	return InstructionsFor(DetectInstallMethod())
}

// InstructionsFor returns update instructions for method
func InstructionsFor(method InstallMethod) string {
	switch method {
	case InstallMethodHomebrew:
		return "Please update using Homebrew:\n  brew upgrade rsinit\n\nOr:\n  brew update && brew upgrade rsinit"
	case InstallMethodGoInstall:
		return "Please update using go install:\n  go install github.com/jfox85/rsinit@latest"
	case InstallMethodCargo, InstallMethodManual:
		return "Run 'rsinit update' to update to the latest version"
	default:
		return "Unable to determine installation method. Please reinstall rsinit."
	}
}
