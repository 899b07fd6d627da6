package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName names the global config directory and the env prefix.
	AppName = "rsinit"
	// ProjectConfigDirName is the per-directory override looked up from the working directory.
	ProjectConfigDirName = ".rsinit"
	// FileName is the config file inside a config directory.
	FileName = "config.yaml"
)

// FindProjectConfigDir searches for a .rsinit directory starting from the current
// working directory and walking up the directory tree. Returns the path to the
// .rsinit directory if found, or empty string if not found.
func FindProjectConfigDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	return findProjectConfigDirFromPath(cwd)
}

func findProjectConfigDirFromPath(startPath string) string {
	currentPath := startPath

	for {
		candidate := filepath.Join(currentPath, ProjectConfigDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}

		currentPath = parentPath
	}

	return ""
}

// GlobalConfigDir returns ~/.config/rsinit, or "" when the home directory is unknown.
func GlobalConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// GetConfigDir returns the config directory path, checking project-level first
func GetConfigDir() string {
	if projectDir := FindProjectConfigDir(); projectDir != "" {
		return projectDir
	}
	return GlobalConfigDir()
}

// GetConfigPath returns the path to the config file, checking project-level first
func GetConfigPath() string {
	if projectDir := FindProjectConfigDir(); projectDir != "" {
		configPath := filepath.Join(projectDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	globalDir := GlobalConfigDir()
	if globalDir == "" {
		return ""
	}
	return filepath.Join(globalDir, FileName)
}
