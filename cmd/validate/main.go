// Command validate runs the repository validation pipeline and exits
// non-zero if any required check fails.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/efficio-cad/efficio/internal/checks"
)

func main() {
	root := flag.String("root", ".", "repository root to validate")
	noColor := flag.Bool("no-color", false, "disable ANSI colors in the report")
	skip := flag.String("skip", "", "comma-separated step names to skip")
	list := flag.Bool("list", false, "print the pipeline steps in order and exit")
	flag.Parse()

	if *list {
		for _, name := range checks.StepNames() {
			fmt.Println(name)
		}
		return
	}

	skipped, err := parseSkip(*skip)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	r := checks.NewRunner(*root)
	r.Color = !*noColor
	r.Skip = skipped

	os.Exit(r.Run())
}

// parseSkip validates a comma-separated list of step names against the
// pipeline.
func parseSkip(spec string) (map[string]bool, error) {
	valid := map[string]bool{}
	for _, name := range checks.StepNames() {
		valid[name] = true
	}

	skipped := map[string]bool{}
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !valid[name] {
			return nil, fmt.Errorf("unknown step %q (valid: %s)", name, strings.Join(checks.StepNames(), ", "))
		}
		skipped[name] = true
	}
	return skipped, nil
}
