// Package manifest reads Cargo.toml files produced by the scaffolder.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest file at every workspace and crate root.
const FileName = "Cargo.toml"

var (
	// ErrNotWorkspace is returned when a manifest has no [workspace] table.
	ErrNotWorkspace = errors.New("not a workspace manifest")
	// ErrNotPackage is returned when a manifest has no [package] table.
	ErrNotPackage = errors.New("not a package manifest")
)

// Workspace is the [workspace] table of a root manifest.
type Workspace struct {
	Members  []string `toml:"members"`
	Exclude  []string `toml:"exclude"`
	Resolver string   `toml:"resolver"`
}

// Package is the [package] table of a crate manifest.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// Crate is a member crate with the names of its declared dependencies.
type Crate struct {
	Dir          string
	Package      Package
	Dependencies []string
}

type document struct {
	Workspace    *Workspace     `toml:"workspace"`
	Package      *Package       `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
}

func load(dir string) (*document, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &doc, nil
}

// LoadWorkspace reads the [workspace] table of root/Cargo.toml.
func LoadWorkspace(root string) (*Workspace, error) {
	doc, err := load(root)
	if err != nil {
		return nil, err
	}
	if doc.Workspace == nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(root, FileName), ErrNotWorkspace)
	}
	return doc.Workspace, nil
}

// MemberDirs expands the member patterns relative to root and returns the
// matching directories that contain a manifest, sorted and without excludes.
func (w *Workspace) MemberDirs(root string) ([]string, error) {
	excluded := make(map[string]bool)
	for _, pattern := range w.Exclude {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			excluded[m] = true
		}
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, pattern := range w.Members {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid member pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded[m] {
				continue
			}
			if _, err := os.Stat(filepath.Join(m, FileName)); err != nil {
				continue
			}
			seen[m] = true
			dirs = append(dirs, m)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// LoadCrate reads the [package] and [dependencies] tables of dir/Cargo.toml.
func LoadCrate(dir string) (*Crate, error) {
	doc, err := load(dir)
	if err != nil {
		return nil, err
	}
	if doc.Package == nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(dir, FileName), ErrNotPackage)
	}

	deps := make([]string, 0, len(doc.Dependencies))
	for name := range doc.Dependencies {
		deps = append(deps, name)
	}
	sort.Strings(deps)

	return &Crate{
		Dir:          dir,
		Package:      *doc.Package,
		Dependencies: deps,
	}, nil
}

// LoadMembers reads every member crate of the workspace at root.
func LoadMembers(root string) ([]*Crate, error) {
	ws, err := LoadWorkspace(root)
	if err != nil {
		return nil, err
	}

	dirs, err := ws.MemberDirs(root)
	if err != nil {
		return nil, err
	}

	crates := make([]*Crate, 0, len(dirs))
	for _, dir := range dirs {
		c, err := LoadCrate(dir)
		if err != nil {
			return nil, err
		}
		crates = append(crates, c)
	}
	return crates, nil
}
