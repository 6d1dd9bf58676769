package checks

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/efficio-cad/efficio/internal/fsutil"
)

const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

// Severity says what a step failure means for the run.
type Severity int

const (
	// Hard failures stop the pipeline and fail the run.
	Hard Severity = iota
	// Soft failures warn and let the run continue.
	Soft
)

func (s Severity) String() string {
	if s == Hard {
		return "hard"
	}
	return "soft"
}

// Outcome is what happened to one step.
type Outcome int

const (
	Passed Outcome = iota
	Failed
	Skipped
)

// Result records one step's outcome for reporting and inspection.
type Result struct {
	Step     string
	Severity Severity
	Outcome  Outcome
	Detail   string
	Remedy   string
}

type step struct {
	name     string
	severity Severity
	run      func(r *Runner) Result
}

// The pipeline order is fixed: cheap structural checks first, then
// tests, then advisory scans. Hard steps gate everything after them.
var pipeline = []step{
	{name: "typecheck", severity: Hard, run: runTypecheck},
	{name: "format", severity: Hard, run: runFormat},
	{name: "imports", severity: Hard, run: runImports},
	{name: "tests", severity: Hard, run: runTests},
	{name: "coverage", severity: Soft, run: runCoverage},
	{name: "lint", severity: Hard, run: runLint},
	{name: "security", severity: Soft, run: runSecurity},
	{name: "markers", severity: Soft, run: runMarkers},
	{name: "debug", severity: Soft, run: runDebug},
}

// StepNames returns the pipeline step names in execution order.
func StepNames() []string {
	names := make([]string, len(pipeline))
	for i, s := range pipeline {
		names[i] = s.name
	}
	return names
}

// Runner executes the pipeline against one repository root. Every
// collaborator is injectable so the control flow tests run without a
// Go toolchain on the host.
type Runner struct {
	Builder  CommandBuilder
	LookPath func(file string) (string, error)
	FS       fsutil.FileSystem
	Root     string
	Out      io.Writer
	Color    bool
	Skip     map[string]bool

	// Results collects one entry per step after Run.
	Results []Result
}

// NewRunner builds a Runner with real command execution against root.
func NewRunner(root string) *Runner {
	return &Runner{
		Builder:  NewRealCommandBuilder(),
		LookPath: exec.LookPath,
		FS:       fsutil.OSFileSystem{},
		Root:     root,
		Out:      os.Stdout,
		Color:    true,
		Skip:     map[string]bool{},
	}
}

// Run executes the steps in order and returns the process exit code:
// 0 when every hard step passed, 1 otherwise. The first hard failure
// stops the pipeline; soft failures are reported and skipped over.
func (r *Runner) Run() int {
	r.Results = r.Results[:0]
	softFailures := 0

	for _, s := range pipeline {
		var res Result
		if r.Skip[s.name] {
			res = Result{Outcome: Skipped, Detail: "skipped by request"}
		} else {
			res = s.run(r)
		}
		res.Step = s.name
		res.Severity = s.severity
		r.Results = append(r.Results, res)
		r.report(res)

		if res.Outcome == Failed {
			if s.severity == Hard {
				fmt.Fprintf(r.Out, "\n%s\n", r.colorize(colorBoldRed, "validation stopped at "+s.name))
				return 1
			}
			softFailures++
		}
	}

	switch softFailures {
	case 0:
		fmt.Fprintf(r.Out, "\n%s\n", r.colorize(colorBoldGreen, "all checks passed"))
	case 1:
		fmt.Fprintf(r.Out, "\n%s\n", r.colorize(colorYellow, "all required checks passed (1 warning)"))
	default:
		fmt.Fprintf(r.Out, "\n%s\n", r.colorize(colorYellow, fmt.Sprintf("all required checks passed (%d warnings)", softFailures)))
	}
	return 0
}

// command runs one pipeline command inside the repository root and
// returns its trimmed combined output.
func (r *Runner) command(name string, args ...string) (string, error) {
	cmd := r.Builder.BuildCommand(name, args...)
	cmd.SetDir(r.Root)
	out, err := cmd.Run()
	return strings.TrimSpace(string(out)), err
}

func (r *Runner) colorize(color, s string) string {
	if !r.Color {
		return s
	}
	return color + s + colorReset
}

func (r *Runner) report(res Result) {
	switch res.Outcome {
	case Passed:
		fmt.Fprintf(r.Out, "%s %s\n", r.colorize(colorBoldGreen, "✓"), res.Step)
	case Skipped:
		fmt.Fprintf(r.Out, "%s %s (%s)\n", r.colorize(colorCyan, "-"), res.Step, res.Detail)
		return
	case Failed:
		if res.Severity == Hard {
			fmt.Fprintf(r.Out, "%s %s (%s)\n", r.colorize(colorBoldRed, "✗"), res.Step, res.Severity)
		} else {
			fmt.Fprintf(r.Out, "%s %s (%s)\n", r.colorize(colorYellow, "!"), res.Step, res.Severity)
		}
	}
	r.printDetail(res.Detail)
	if res.Outcome == Failed && res.Remedy != "" {
		fmt.Fprintf(r.Out, "    %s %s\n", r.colorize(colorCyan, "fix:"), res.Remedy)
	}
}

func (r *Runner) printDetail(detail string) {
	if detail == "" {
		return
	}
	for _, line := range strings.Split(detail, "\n") {
		fmt.Fprintf(r.Out, "    %s\n", line)
	}
}

func runTypecheck(r *Runner) Result {
	out, err := r.command("go", "vet", "./...")
	if err != nil {
		return Result{Outcome: Failed, Detail: out, Remedy: "go vet ./... and fix the reported issues"}
	}
	return Result{Outcome: Passed}
}

func runFormat(r *Runner) Result {
	out, err := r.command("gofmt", "-l", ".")
	if err != nil {
		return Result{Outcome: Failed, Detail: out, Remedy: "gofmt -w ."}
	}
	if out != "" {
		return Result{Outcome: Failed, Detail: "files need formatting:\n" + out, Remedy: "gofmt -w ."}
	}
	return Result{Outcome: Passed}
}

func runImports(r *Runner) Result {
	if _, err := r.LookPath("goimports"); err != nil {
		return Result{
			Outcome: Failed,
			Detail:  "goimports is not installed",
			Remedy:  "go install golang.org/x/tools/cmd/goimports@latest",
		}
	}
	out, err := r.command("goimports", "-l", ".")
	if err != nil {
		return Result{Outcome: Failed, Detail: out, Remedy: "goimports -w ."}
	}
	if out != "" {
		return Result{Outcome: Failed, Detail: "files have unordered imports:\n" + out, Remedy: "goimports -w ."}
	}
	return Result{Outcome: Passed}
}

func runTests(r *Runner) Result {
	out, err := r.command("go", "test", "./...")
	if err != nil {
		return Result{Outcome: Failed, Detail: tail(out, 30), Remedy: "go test ./..."}
	}
	return Result{Outcome: Passed}
}

func runCoverage(r *Runner) Result {
	out, err := r.command("go", "test", "-cover", "./...")
	if err != nil {
		return Result{Outcome: Failed, Detail: tail(out, 30), Remedy: "go test -cover ./..."}
	}
	return Result{Outcome: Passed, Detail: coverageLines(out)}
}

func runLint(r *Runner) Result {
	if _, err := r.LookPath("staticcheck"); err != nil {
		return Result{Outcome: Skipped, Detail: "staticcheck not installed"}
	}
	out, err := r.command("staticcheck", "./...")
	if err != nil {
		return Result{Outcome: Failed, Detail: tail(out, 30), Remedy: "staticcheck ./... and fix the reported issues"}
	}
	return Result{Outcome: Passed}
}

func runSecurity(r *Runner) Result {
	if _, err := r.LookPath("govulncheck"); err != nil {
		return Result{Outcome: Skipped, Detail: "govulncheck not installed"}
	}
	out, err := r.command("govulncheck", "./...")
	if err != nil {
		return Result{Outcome: Failed, Detail: tail(out, 30), Remedy: "govulncheck ./... and update the affected modules"}
	}
	return Result{Outcome: Passed}
}

func runMarkers(r *Runner) Result {
	findings, err := scanMarkers(r.FS, r.Root)
	if err != nil {
		return Result{Outcome: Failed, Detail: err.Error()}
	}
	if len(findings) > 0 {
		return Result{
			Outcome: Failed,
			Detail:  capLines(findings, 20),
			Remedy:  "resolve or remove the work markers",
		}
	}
	return Result{Outcome: Passed}
}

func runDebug(r *Runner) Result {
	findings, err := scanDebug(r.FS, r.Root)
	if err != nil {
		return Result{Outcome: Failed, Detail: err.Error()}
	}
	if len(findings) > 0 {
		return Result{
			Outcome: Failed,
			Detail:  capLines(findings, 20),
			Remedy:  "remove the stray print calls",
		}
	}
	return Result{Outcome: Passed}
}

// tail keeps the last n lines of command output so a long test log
// does not drown the report.
func tail(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	kept := lines[len(lines)-n:]
	return fmt.Sprintf("(%d lines omitted)\n%s", len(lines)-n, strings.Join(kept, "\n"))
}

// coverageLines keeps only the per-package coverage summaries.
func coverageLines(out string) string {
	var kept []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "coverage:") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func capLines(lines []string, n int) string {
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:n], "\n") + fmt.Sprintf("\n... and %d more", len(lines)-n)
}
