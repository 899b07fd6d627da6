package scaffold

import (
	"embed"
)

//go:embed templates/workspace.toml templates/rustfmt.toml
var templatesFS embed.FS

// WorkspaceManifest returns the Cargo.toml written over the generated root manifest.
func WorkspaceManifest() []byte {
	return mustTemplate("templates/workspace.toml")
}

// RustfmtConfig returns the rustfmt.toml written at the workspace root.
func RustfmtConfig() []byte {
	return mustTemplate("templates/rustfmt.toml")
}

func mustTemplate(name string) []byte {
	b, err := templatesFS.ReadFile(name)
	if err != nil {
		panic("scaffold: missing embedded template " + name)
	}
	return b
}
