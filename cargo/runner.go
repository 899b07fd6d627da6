// Package cargo runs the cargo build tool on behalf of the scaffolder.
package cargo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultBinary is the command looked up on PATH when no binary is configured.
const DefaultBinary = "cargo"

// Runner invokes cargo subcommands. Output is streamed to Stdout and Stderr,
// only the exit status is inspected.
type Runner struct {
	Binary string
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner for binary that inherits the process output streams.
func NewRunner(binary string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{
		Binary: binary,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// NewProject runs `cargo new [--bin] <name>` inside dir.
func (r *Runner) NewProject(ctx context.Context, dir, name string, bin bool) error {
	args := []string{"new"}
	if bin {
		args = append(args, "--bin")
	}
	args = append(args, name)
	return r.run(ctx, dir, args...)
}

// AddDependencies runs `cargo add <crates...>` inside dir.
func (r *Runner) AddDependencies(ctx context.Context, dir string, crates ...string) error {
	if len(crates) == 0 {
		return errors.New("no crates to add")
	}
	return r.run(ctx, dir, append([]string{"add"}, crates...)...)
}

func (r *Runner) run(ctx context.Context, dir string, args ...string) error {
	binary := r.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", binary, strings.Join(args, " "), err)
	}
	return nil
}
