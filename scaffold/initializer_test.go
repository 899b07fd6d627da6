package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jfox85/rsinit/manifest"
)

// fakeCargo mimics the parts of cargo the initializer relies on.
type fakeCargo struct {
	calls  []string
	failOn map[string]error // keyed by "new <name>" or "add"
}

func (f *fakeCargo) NewProject(_ context.Context, dir, name string, bin bool) error {
	call := "new " + name
	if bin {
		call = "new --bin " + name
	}
	f.calls = append(f.calls, call)

	if err := f.failOn["new "+name]; err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("destination `%s` already exists", path)
	}

	if err := os.MkdirAll(filepath.Join(path, "src"), 0755); err != nil {
		return err
	}
	pkg := fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n\n[dependencies]\n", name)
	if err := os.WriteFile(filepath.Join(path, "Cargo.toml"), []byte(pkg), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(path, "src", "main.rs"), []byte("fn main() {}\n"), 0644)
}

func (f *fakeCargo) AddDependencies(_ context.Context, dir string, crates ...string) error {
	f.calls = append(f.calls, "add "+strings.Join(crates, " "))

	if err := f.failOn["add"]; err != nil {
		return err
	}

	members, err := filepath.Glob(filepath.Join(dir, MembersDir, "*", "Cargo.toml"))
	if err != nil {
		return err
	}
	if len(members) != 1 {
		return fmt.Errorf("expected exactly one member, found %d", len(members))
	}

	file, err := os.OpenFile(members[0], os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, c := range crates {
		if _, err := fmt.Fprintf(file, "%s = \"1\"\n", c); err != nil {
			return err
		}
	}
	return nil
}

func TestInitializeCreatesWorkspace(t *testing.T) {
	base := t.TempDir()
	tool := &fakeCargo{}

	initializer := NewInitializer(tool, WithBaseDir(base))
	if err := initializer.Initialize(context.Background(), "demo"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	root := filepath.Join(base, "demo")

	manifestData, err := os.ReadFile(filepath.Join(root, ManifestFile))
	if err != nil {
		t.Fatalf("failed to read workspace manifest: %v", err)
	}
	wantManifest := "[workspace]\nmembers = [\"crates/*\"]\nresolver = \"2\"\n"
	if string(manifestData) != wantManifest {
		t.Errorf("workspace manifest = %q, want %q", manifestData, wantManifest)
	}

	rustfmtData, err := os.ReadFile(filepath.Join(root, RustfmtFile))
	if err != nil {
		t.Fatalf("failed to read rustfmt config: %v", err)
	}
	wantRustfmt := "imports_granularity=\"Crate\"\nwrap_comments=true\ncomment_width=100\ngroup_imports=\"StdExternalCrate\"\n"
	if string(rustfmtData) != wantRustfmt {
		t.Errorf("rustfmt config = %q, want %q", rustfmtData, wantRustfmt)
	}

	if info, err := os.Stat(filepath.Join(root, MembersDir, MemberName)); err != nil || !info.IsDir() {
		t.Errorf("expected member crate directory, stat error = %v", err)
	}

	wantCalls := []string{
		"new demo",
		"new --bin app",
		"add snafu tracing tracing-subscriber ir_aquila",
	}
	if !reflect.DeepEqual(tool.calls, wantCalls) {
		t.Errorf("tool calls = %v, want %v", tool.calls, wantCalls)
	}
}

func TestInitializeManifestIsWorkspace(t *testing.T) {
	base := t.TempDir()
	if err := NewInitializer(&fakeCargo{}, WithBaseDir(base)).Initialize(context.Background(), "demo"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	root := filepath.Join(base, "demo")
	ws, err := manifest.LoadWorkspace(root)
	if err != nil {
		t.Fatalf("LoadWorkspace() error = %v", err)
	}
	if !reflect.DeepEqual(ws.Members, []string{"crates/*"}) || ws.Resolver != "2" {
		t.Errorf("workspace = %+v, want members [crates/*] resolver 2", ws)
	}

	crates, err := manifest.LoadMembers(root)
	if err != nil {
		t.Fatalf("LoadMembers() error = %v", err)
	}
	if len(crates) != 1 || crates[0].Package.Name != MemberName {
		t.Fatalf("expected single member %q, got %+v", MemberName, crates)
	}

	want := []string{"ir_aquila", "snafu", "tracing", "tracing-subscriber"}
	if !reflect.DeepEqual(crates[0].Dependencies, want) {
		t.Errorf("member dependencies = %v, want %v", crates[0].Dependencies, want)
	}
}

func TestInitializeExistingDirectory(t *testing.T) {
	base := t.TempDir()
	existing := filepath.Join(base, "demo")
	sibling := filepath.Join(base, "sibling")

	for _, dir := range []string{existing, sibling} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("keep"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	tool := &fakeCargo{}
	err := NewInitializer(tool, WithBaseDir(base)).Initialize(context.Background(), "demo")
	if err == nil {
		t.Fatal("expected error for existing directory")
	}
	if !IsKind(err, KindToolFailure) || FailedOp(err) != OpCreateProject {
		t.Errorf("error = %v, want %s tool failure", err, OpCreateProject)
	}

	if _, err := os.Stat(filepath.Join(existing, ManifestFile)); !os.IsNotExist(err) {
		t.Error("workspace manifest must not be written after step 1 fails")
	}

	entries, err := os.ReadDir(sibling)
	if err != nil {
		t.Fatalf("failed to read sibling: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "keep.txt" {
		t.Errorf("sibling directory was modified: %v", entries)
	}

	if len(tool.calls) != 1 {
		t.Errorf("expected only the first tool call, got %v", tool.calls)
	}
}

func TestInitializeMemberFailure(t *testing.T) {
	base := t.TempDir()
	tool := &fakeCargo{failOn: map[string]error{"new app": errors.New("exit status 101")}}

	err := NewInitializer(tool, WithBaseDir(base)).Initialize(context.Background(), "demo")
	if !IsKind(err, KindToolFailure) || FailedOp(err) != OpCreateMemberProject {
		t.Fatalf("error = %v, want %s tool failure", err, OpCreateMemberProject)
	}

	crates := filepath.Join(base, "demo", MembersDir)
	if info, err := os.Stat(crates); err != nil || !info.IsDir() {
		t.Errorf("expected %s to remain, stat error = %v", crates, err)
	}
	if _, err := os.Stat(filepath.Join(crates, MemberName)); !os.IsNotExist(err) {
		t.Errorf("expected no member crate, stat error = %v", err)
	}

	for _, call := range tool.calls {
		if strings.HasPrefix(call, "add") {
			t.Errorf("dependencies must not be added after member failure, calls = %v", tool.calls)
		}
	}
}

func TestInitializeStepFailures(t *testing.T) {
	tests := []struct {
		name     string
		tool     *fakeCargo
		setup    func(t *testing.T, root string)
		wantOp   string
		wantKind ErrorKind
	}{
		{
			name:     "create_project",
			tool:     &fakeCargo{failOn: map[string]error{"new demo": errors.New("exit status 101")}},
			wantOp:   OpCreateProject,
			wantKind: KindToolFailure,
		},
		{
			name:     "add_dependencies",
			tool:     &fakeCargo{failOn: map[string]error{"add": errors.New("exit status 101")}},
			wantOp:   OpAddDependencies,
			wantKind: KindToolFailure,
		},
		{
			name: "members_dir_exists",
			tool: &fakeCargo{},
			setup: func(t *testing.T, root string) {
				// cargo would never create crates/, but a template that does must fail.
				if err := os.MkdirAll(filepath.Join(root, MembersDir), 0755); err != nil {
					t.Fatal(err)
				}
			},
			wantOp:   OpCreateMembersDir,
			wantKind: KindIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			var tool Tool = tt.tool
			if tt.setup != nil {
				tool = &hookedCargo{fakeCargo: tt.tool, after: func(root string) { tt.setup(t, root) }}
			}

			err := NewInitializer(tool, WithBaseDir(base)).Initialize(context.Background(), "demo")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if FailedOp(err) != tt.wantOp {
				t.Errorf("FailedOp() = %q, want %q (err = %v)", FailedOp(err), tt.wantOp, err)
			}
			if !IsKind(err, tt.wantKind) {
				t.Errorf("expected kind %q, got %v", tt.wantKind, err)
			}
		})
	}
}

// hookedCargo calls after once the first project has been created.
type hookedCargo struct {
	*fakeCargo
	after func(root string)
	done  bool
}

func (h *hookedCargo) NewProject(ctx context.Context, dir, name string, bin bool) error {
	if err := h.fakeCargo.NewProject(ctx, dir, name, bin); err != nil {
		return err
	}
	if !h.done {
		h.done = true
		h.after(filepath.Join(dir, name))
	}
	return nil
}

func TestInitializeManifestWriteFailure(t *testing.T) {
	// A tool that reports success without creating anything leaves no
	// directory for the workspace manifest.
	base := t.TempDir()
	err := NewInitializer(noopCargo{}, WithBaseDir(base)).Initialize(context.Background(), "demo")

	if !IsKind(err, KindIO) || FailedOp(err) != OpWriteManifest {
		t.Fatalf("error = %v, want %s io failure", err, OpWriteManifest)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped not-exist error, got %v", err)
	}
}

type noopCargo struct{}

func (noopCargo) NewProject(context.Context, string, string, bool) error { return nil }
func (noopCargo) AddDependencies(context.Context, string, ...string) error { return nil }

func TestDefaultDependencies(t *testing.T) {
	deps := DefaultDependencies()
	want := []string{"snafu", "tracing", "tracing-subscriber", "ir_aquila"}
	if !reflect.DeepEqual(deps, want) {
		t.Errorf("DefaultDependencies() = %v, want %v", deps, want)
	}

	// Callers get their own copy.
	deps[0] = "changed"
	if DefaultDependencies()[0] != "snafu" {
		t.Error("DefaultDependencies() returned shared slice")
	}
}

func TestInitErrorMessage(t *testing.T) {
	err := &InitError{
		Op:   OpCreateProject,
		Kind: KindToolFailure,
		Path: "demo",
		Err:  errors.New("exit status 101"),
	}

	want := "create project: tool failure (path=demo): exit status 101"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var nilErr *InitError
	if nilErr.Error() != "<nil>" {
		t.Errorf("nil Error() = %q", nilErr.Error())
	}
	if nilErr.Unwrap() != nil {
		t.Error("nil Unwrap() should be nil")
	}
}
