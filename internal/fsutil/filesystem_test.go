package fsutil

import (
	"errors"
	"io/fs"
	"sort"
	"testing"
)

func TestOSFileSystem_Exists(t *testing.T) {
	osfs := OSFileSystem{}

	if !osfs.Exists("filesystem.go") {
		t.Error("expected filesystem.go to exist")
	}

	if osfs.Exists("nonexistent_file_xyz.go") {
		t.Error("expected nonexistent file to not exist")
	}
}

func TestMemoryFileSystem_ReadWrite(t *testing.T) {
	m := NewMemoryFileSystem()

	if err := m.WriteFile("out/box.stl", []byte("solid box"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := m.ReadFile("out/box.stl")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "solid box" {
		t.Errorf("ReadFile = %q, want %q", data, "solid box")
	}

	// Mutating the returned slice must not affect the stored copy.
	data[0] = 'X'
	again, _ := m.ReadFile("out/box.stl")
	if string(again) != "solid box" {
		t.Errorf("stored data mutated through returned slice: %q", again)
	}

	if _, err := m.ReadFile("missing.stl"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestMemoryFileSystem_Create(t *testing.T) {
	m := NewMemoryFileSystem()

	w, err := m.Create("render.png")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := w.Write([]byte("png")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := m.ReadFile("render.png")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "pngdata" {
		t.Errorf("ReadFile = %q, want %q", data, "pngdata")
	}
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	m := NewMemoryFileSystem()
	if err := m.WriteFile("a/b.txt", []byte("12345"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := m.Stat("a/b.txt")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("Size = %d, want 5", info.Size())
	}
	if info.IsDir() {
		t.Error("file reported as directory")
	}

	if err := m.MkdirAll("a/c", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	info, err = m.Stat("a/c")
	if err != nil {
		t.Fatalf("Stat dir failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("directory reported as file")
	}

	if _, err := m.Stat("nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(nope) error = %v, want fs.ErrNotExist", err)
	}
}

func TestMemoryFileSystem_Exists(t *testing.T) {
	m := NewMemoryFileSystem()
	if m.Exists("anything") {
		t.Error("empty filesystem claims file exists")
	}

	m.WriteFile("f.txt", nil, 0644)
	if !m.Exists("f.txt") {
		t.Error("written file does not exist")
	}

	m.MkdirAll("d/e", 0755)
	if !m.Exists("d") {
		t.Error("parent directory does not exist after MkdirAll")
	}
}

func TestMemoryFileSystem_WalkDir(t *testing.T) {
	m := NewMemoryFileSystem()
	m.WriteFile("proj/main.go", []byte("package main"), 0644)
	m.WriteFile("proj/pkg/a.go", []byte("package pkg"), 0644)
	m.WriteFile("proj/pkg/a_test.go", []byte("package pkg"), 0644)
	m.MkdirAll("proj/empty", 0755)

	var visited []string
	err := m.WalkDir("proj", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir failed: %v", err)
	}

	want := []string{"proj", "proj/empty", "proj/main.go", "proj/pkg", "proj/pkg/a.go", "proj/pkg/a_test.go"}
	sort.Strings(visited)
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestMemoryFileSystem_WalkDirSkip(t *testing.T) {
	m := NewMemoryFileSystem()
	m.WriteFile("repo/keep.go", []byte("x"), 0644)
	m.WriteFile("repo/vendor/dep.go", []byte("x"), 0644)
	m.WriteFile("repo/vendor/sub/dep2.go", []byte("x"), 0644)

	var visited []string
	err := m.WalkDir("repo", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "vendor" {
			return fs.SkipDir
		}
		visited = append(visited, path)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir failed: %v", err)
	}

	for _, p := range visited {
		if p == "repo/vendor/dep.go" || p == "repo/vendor/sub/dep2.go" {
			t.Errorf("visited skipped path %q", p)
		}
	}
}

func TestMemoryFileSystem_WalkDirMissingRoot(t *testing.T) {
	m := NewMemoryFileSystem()
	err := m.WalkDir("missing", func(path string, d fs.DirEntry, err error) error {
		return err
	})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("WalkDir(missing) error = %v, want fs.ErrNotExist", err)
	}
}
