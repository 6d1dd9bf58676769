package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/efficio-cad/efficio/internal/fsutil"
	"github.com/efficio-cad/efficio/internal/history"
)

func newTestDB(t *testing.T) *history.DB {
	t.Helper()
	db, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	return db
}

func TestWriteHTML(t *testing.T) {
	db := newTestDB(t)
	inserts := []struct {
		object string
		ms     int64
	}{
		{"gear", 120},
		{"gear", 80},
		{"rounded-box", 300},
	}
	for _, in := range inserts {
		if err := db.Insert(&history.Build{Object: in.object, Format: "stl", Path: in.object + ".stl", DurationMS: in.ms}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	fs := fsutil.NewMemoryFileSystem()
	if err := WriteHTML(fs, db, "report.html"); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}

	data, err := fs.ReadFile("report.html")
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	html := string(data)

	for _, want := range []string{"<html", "Builds by object", "Build duration", "gear", "rounded-box"} {
		if !strings.Contains(html, want) {
			t.Errorf("report does not contain %q", want)
		}
	}
}

func TestWriteHTMLEmptyHistory(t *testing.T) {
	db := newTestDB(t)
	fs := fsutil.NewMemoryFileSystem()

	err := WriteHTML(fs, db, "report.html")
	if err == nil {
		t.Fatal("expected an error with no recorded builds")
	}
	if !strings.Contains(err.Error(), "no builds") {
		t.Errorf("error %q does not mention missing builds", err)
	}
}
