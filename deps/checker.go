package deps

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jfox85/rsinit/config"
	"github.com/jfox85/rsinit/version"
	"github.com/spf13/viper"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Dependency struct {
	Name        string
	Command     string
	Required    bool
	Description string
	InstallHint string
}

type CheckResult struct {
	Dependency Dependency
	Available  bool
	Version    string
	Error      error
}

// GetDependencies returns the list of tools rsinit relies on
func GetDependencies() []Dependency {
	return []Dependency{
		{
			Name:        "Cargo",
			Command:     cargoCommand(),
			Required:    true,
			Description: "Rust build tool used to create crates and add dependencies",
			InstallHint: "Install with: curl https://sh.rustup.rs -sSf | sh",
		},
		{
			Name:        "Rustfmt",
			Command:     "rustfmt",
			Required:    false,
			Description: "Formatter that reads the generated rustfmt.toml",
			InstallHint: "Install with: rustup component add rustfmt",
		},
		{
			Name:        "Git",
			Command:     "git",
			Required:    false,
			Description: "Used by cargo to initialize a repository for new projects",
			InstallHint: "Install with: brew install git",
		},
	}
}

// cargoCommand returns the configured cargo binary, resolved the same way
// init resolves it
func cargoCommand() string {
	cargo := viper.GetString(config.KeyCargo)
	if cargo == "" {
		return "cargo"
	}
	if resolved, err := config.ResolveCargo(cargo); err == nil {
		return resolved
	}
	return cargo
}

// CheckDependency checks if a single dependency is available
func CheckDependency(dep Dependency) CheckResult {
	result := CheckResult{
		Dependency: dep,
		Available:  false,
	}

	_, err := exec.LookPath(dep.Command)
	if err != nil {
		result.Error = err
		return result
	}

	result.Available = true

	// Version output is best effort
	output, err := exec.Command(dep.Command, "--version").Output()
	if err == nil {
		line, _, _ := strings.Cut(string(output), "\n")
		result.Version = strings.TrimSpace(line)
	}

	return result
}

// CheckAllDependencies checks all dependencies and returns results
func CheckAllDependencies() []CheckResult {
	deps := GetDependencies()
	results := make([]CheckResult, len(deps))

	for i, dep := range deps {
		results[i] = CheckDependency(dep)
	}

	return results
}

// MissingRequired returns the names of required dependencies that were not found
func MissingRequired(results []CheckResult) []string {
	var missing []string
	for _, result := range results {
		if !result.Available && result.Dependency.Required {
			missing = append(missing, result.Dependency.Name)
		}
	}
	return missing
}

// PrintResults writes dependency check results to w
func PrintResults(w io.Writer, results []CheckResult) {
	var missingOptional []string

	fmt.Fprintf(w, "Dependency Check (%s):\n", version.Get().String())
	fmt.Fprintln(w, "=================")

	for _, result := range results {
		status := okStyle.Render("✓")
		if !result.Available {
			status = missingStyle.Render("✗")
			if !result.Dependency.Required {
				missingOptional = append(missingOptional, result.Dependency.Name)
			}
		}

		fmt.Fprintf(w, "%s %s", status, result.Dependency.Name)
		if result.Available && result.Version != "" {
			fmt.Fprintf(w, " (%s)", result.Version)
		}
		fmt.Fprintf(w, " - %s\n", result.Dependency.Description)

		if !result.Available {
			fmt.Fprintf(w, "  └─ %s\n", hintStyle.Render(result.Dependency.InstallHint))
		}
	}

	fmt.Fprintln(w)

	missingRequired := MissingRequired(results)
	if len(missingRequired) > 0 {
		fmt.Fprintf(w, "⚠️  Missing required dependencies: %s\n", strings.Join(missingRequired, ", "))
		fmt.Fprintln(w, "   rsinit init will fail until these are installed.")
	}

	if len(missingOptional) > 0 {
		fmt.Fprintf(w, "ℹ️  Missing optional dependencies: %s\n", strings.Join(missingOptional, ", "))
		fmt.Fprintln(w, "   These are recommended but not required.")
	}

	if len(missingRequired) == 0 && len(missingOptional) == 0 {
		fmt.Fprintln(w, "✅ All dependencies are available!")
	}
}
