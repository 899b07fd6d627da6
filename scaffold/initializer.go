// Package scaffold creates new Cargo workspaces with a single binary member crate.
package scaffold

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ManifestFile is the manifest name cargo uses at every package and workspace root.
	ManifestFile = "Cargo.toml"
	// RustfmtFile is the formatting config written at the workspace root.
	RustfmtFile = "rustfmt.toml"
	// MembersDir holds the workspace member crates.
	MembersDir = "crates"
	// MemberName is the binary crate created inside MembersDir.
	MemberName = "app"
)

// Step names reported in InitError.Op.
const (
	OpCreateProject       = "create project"
	OpWriteManifest       = "write workspace manifest"
	OpWriteRustfmt        = "write rustfmt config"
	OpCreateMembersDir    = "create members directory"
	OpCreateMemberProject = "create member project"
	OpAddDependencies     = "add dependencies"
)

// DefaultDependencies returns the crates added to every new workspace.
func DefaultDependencies() []string {
	return []string{"snafu", "tracing", "tracing-subscriber", "ir_aquila"}
}

// Tool is the build tool the initializer drives.
type Tool interface {
	// NewProject runs the tool's "new project" operation for name inside dir.
	// bin requests the executable-program template.
	NewProject(ctx context.Context, dir, name string, bin bool) error
	// AddDependencies adds crates to the project rooted at dir.
	AddDependencies(ctx context.Context, dir string, crates ...string) error
}

// InitRequest is a single request to scaffold a workspace.
type InitRequest struct {
	Name string
}

// Initializer runs the workspace scaffolding sequence.
type Initializer struct {
	tool    Tool
	baseDir string
	logger  *slog.Logger
}

// Option configures an Initializer.
type Option func(*Initializer)

// WithBaseDir sets the directory the new project is created in. Empty means
// the process working directory.
func WithBaseDir(dir string) Option {
	return func(i *Initializer) {
		i.baseDir = dir
	}
}

// WithLogger sets the logger used for step tracing.
func WithLogger(l *slog.Logger) Option {
	return func(i *Initializer) {
		if l != nil {
			i.logger = l
		}
	}
}

// NewInitializer returns an Initializer that drives tool.
func NewInitializer(tool Tool, opts ...Option) *Initializer {
	i := &Initializer{
		tool:   tool,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Initialize scaffolds a workspace called name. See Run.
func (i *Initializer) Initialize(ctx context.Context, name string) error {
	return i.Run(ctx, InitRequest{Name: name})
}

// Run creates the project, turns it into a workspace, and adds the member
// crate with its default dependencies. It stops at the first failing step and
// returns it as an *InitError. Nothing created before the failure is removed.
func (i *Initializer) Run(ctx context.Context, req InitRequest) error {
	projectPath := filepath.Join(i.baseDir, req.Name)
	log := i.logger.With("project", projectPath)

	log.Debug("scaffold.create_project")
	if err := i.tool.NewProject(ctx, i.baseDir, req.Name, false); err != nil {
		return toolFailure(OpCreateProject, projectPath, err)
	}

	// The generated package manifest is replaced wholesale.
	manifestPath := filepath.Join(projectPath, ManifestFile)
	log.Debug("scaffold.write_manifest", "path", manifestPath)
	if err := os.WriteFile(manifestPath, WorkspaceManifest(), 0644); err != nil {
		return ioFailure(OpWriteManifest, manifestPath, err)
	}

	rustfmtPath := filepath.Join(projectPath, RustfmtFile)
	log.Debug("scaffold.write_rustfmt", "path", rustfmtPath)
	if err := os.WriteFile(rustfmtPath, RustfmtConfig(), 0644); err != nil {
		return ioFailure(OpWriteRustfmt, rustfmtPath, err)
	}

	membersPath := filepath.Join(projectPath, MembersDir)
	log.Debug("scaffold.create_members_dir", "path", membersPath)
	if err := os.Mkdir(membersPath, 0755); err != nil {
		return ioFailure(OpCreateMembersDir, membersPath, err)
	}

	log.Debug("scaffold.create_member", "name", MemberName)
	if err := i.tool.NewProject(ctx, membersPath, MemberName, true); err != nil {
		return toolFailure(OpCreateMemberProject, filepath.Join(membersPath, MemberName), err)
	}

	deps := DefaultDependencies()
	log.Debug("scaffold.add_dependencies", "crates", deps)
	if err := i.tool.AddDependencies(ctx, projectPath, deps...); err != nil {
		return toolFailure(OpAddDependencies, projectPath, err)
	}

	log.Info("scaffold.done")
	return nil
}
