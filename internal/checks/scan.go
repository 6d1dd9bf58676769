package checks

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/efficio-cad/efficio/internal/fsutil"
)

// markerWords are assembled by concatenation so the scanner never
// flags its own source.
var markerWords = []string{
	"TO" + "DO",
	"FIX" + "ME",
	"XX" + "X",
	"HA" + "CK",
}

// debugCalls flag stray prints in library code. The fmt.Sprintf and
// fmt.Fprintf families do not match. Concatenated for the same reason
// as markerWords.
var debugCalls = []string{
	"fmt.Print" + "(",
	"fmt.Println" + "(",
	"fmt.Printf" + "(",
}

var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
}

// scanMarkers walks root for work markers left in Go source.
func scanMarkers(fsys fsutil.FileSystem, root string) ([]string, error) {
	return scanFiles(fsys, root, func(path string) bool {
		return strings.HasSuffix(path, ".go")
	}, markerWords)
}

// scanDebug walks root for print calls in library code. Tests and
// cmd/ entry points print on purpose and are not scanned.
func scanDebug(fsys fsutil.FileSystem, root string) ([]string, error) {
	return scanFiles(fsys, root, func(path string) bool {
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return false
		}
		return !underCmd(path)
	}, debugCalls)
}

// scanFiles reports each line that contains one of the needles as
// "path:line: needle".
func scanFiles(fsys fsutil.FileSystem, root string, keep func(string) bool, needles []string) ([]string, error) {
	var findings []string
	err := fsys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !keep(path) {
			return nil
		}
		data, err := fsys.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(data), "\n") {
			for _, needle := range needles {
				if strings.Contains(line, needle) {
					findings = append(findings, fmt.Sprintf("%s:%d: %s", path, i+1, strings.TrimSuffix(needle, "(")))
					break
				}
			}
		}
		return nil
	})
	return findings, err
}

func underCmd(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "cmd" {
			return true
		}
	}
	return false
}
