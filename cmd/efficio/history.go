package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/efficio-cad/efficio/internal/fsutil"
	"github.com/efficio-cad/efficio/internal/history"
	"github.com/efficio-cad/efficio/internal/monitoring"
	"github.com/efficio-cad/efficio/internal/report"
)

func handleHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", defaultDBFile, "Build history database")
	limit := fs.Int("limit", 10, "Number of builds to show")
	fs.Parse(args)

	db := mustOpenHistory(*dbPath)
	defer db.Close()

	builds, err := db.Recent(*limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read history: %v\n", err)
		os.Exit(1)
	}
	if len(builds) == 0 {
		fmt.Println("no builds recorded")
		return
	}
	for _, b := range builds {
		fmt.Printf("%s  %-16s %-9s %8s  %6dms  %s\n",
			b.CreatedAt.Format("2006-01-02 15:04:05"),
			b.Object, b.Format, formatSize(b.SizeBytes), b.DurationMS, b.Path)
	}
}

func handleReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	dbPath := fs.String("db", defaultDBFile, "Build history database")
	out := fs.String("o", "report.html", "Output HTML path")
	fs.Parse(args)

	db := mustOpenHistory(*dbPath)
	defer db.Close()

	if err := report.WriteHTML(fsutil.OSFileSystem{}, db, *out); err != nil {
		fmt.Fprintf(os.Stderr, "write report: %v\n", err)
		os.Exit(1)
	}
	monitoring.Logf("wrote %s", *out)
}

// mustOpenHistory opens the history database and brings the schema up
// to date, exiting on failure. Unlike the build command, the history
// commands have nothing useful to do without it.
func mustOpenHistory(path string) *history.DB {
	if path == "" {
		fmt.Fprintln(os.Stderr, "a history database is required (-db)")
		os.Exit(1)
	}
	db, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		fmt.Fprintf(os.Stderr, "migrate %s: %v\n", path, err)
		os.Exit(1)
	}
	return db
}

// formatSize renders a byte count compactly for the history table.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fkB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
