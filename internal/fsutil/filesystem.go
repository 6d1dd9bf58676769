// Package fsutil provides filesystem abstractions for testability.
//
// Export writers and repository scanners take a FileSystem so tests can
// run against an in-memory tree instead of touching disk.
package fsutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// FileSystem abstracts filesystem operations for testability.
// Use OSFileSystem for production; MemoryFileSystem for testing.
type FileSystem interface {
	// Create creates or truncates the named file.
	Create(name string) (io.WriteCloser, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (fs.FileInfo, error)

	// MkdirAll creates a directory and all necessary parents.
	MkdirAll(path string, perm os.FileMode) error

	// Exists checks if a file or directory exists.
	Exists(name string) bool

	// WalkDir walks the file tree rooted at root, calling fn for each
	// file or directory, in the manner of filepath.WalkDir.
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

// Create creates the named file.
func (OSFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// ReadFile reads the named file.
func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes data to the named file.
func (OSFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Stat returns file info for the named file.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory path.
func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Exists checks if a file exists.
func (OSFileSystem) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// WalkDir walks the tree rooted at root.
func (OSFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// MemoryFileSystem provides an in-memory filesystem for testing.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]bool
}

type memFile struct {
	data []byte
	mode os.FileMode
}

// NewMemoryFileSystem creates a new in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string]*memFile),
		dirs:  make(map[string]bool),
	}
}

// Create creates or truncates a file.
func (m *MemoryFileSystem) Create(name string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	m.files[name] = &memFile{data: []byte{}, mode: 0644}

	return &memFileWriter{
		fs:   m,
		name: name,
	}, nil
}

// ReadFile reads a file's contents.
func (m *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	f, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}

	result := make([]byte, len(f.data))
	copy(result, f.data)
	return result, nil
}

// WriteFile writes data to a file.
func (m *MemoryFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	m.files[name] = &memFile{data: dataCopy, mode: perm}

	return nil
}

// Stat returns file info.
func (m *MemoryFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)

	if m.dirs[name] {
		return &memFileInfo{name: filepath.Base(name), isDir: true, mode: 0755 | os.ModeDir}, nil
	}

	f, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}

	return &memFileInfo{
		name: filepath.Base(name),
		size: int64(len(f.data)),
		mode: f.mode,
	}, nil
}

// MkdirAll creates directories.
func (m *MemoryFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	m.dirs[path] = true

	// Create parent directories
	for p := filepath.Dir(path); p != "." && p != "/" && p != path; p = filepath.Dir(p) {
		m.dirs[p] = true
	}

	return nil
}

// Exists checks if a file or directory exists.
func (m *MemoryFileSystem) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)

	if _, ok := m.files[name]; ok {
		return true
	}

	return m.dirs[name]
}

// WalkDir walks the in-memory tree rooted at root. Entries are visited
// in lexical path order, parents before children, so fs.SkipDir works
// as it does with filepath.WalkDir.
func (m *MemoryFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	root = filepath.Clean(root)

	m.mu.RLock()
	entries := m.collect(root)
	m.mu.RUnlock()

	if len(entries) == 0 {
		return fn(root, nil, &fs.PathError{Op: "walkdir", Path: root, Err: fs.ErrNotExist})
	}

	var skip string
	for _, e := range entries {
		if skip != "" && (e.path == skip || strings.HasPrefix(e.path, skip+"/")) {
			continue
		}
		info := &memFileInfo{name: filepath.Base(e.path), size: e.size, mode: e.mode, isDir: e.isDir}
		err := fn(e.path, memDirEntry{info: info}, nil)
		if err == fs.SkipDir {
			if e.isDir {
				skip = e.path
			} else {
				skip = filepath.Dir(e.path)
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type walkEntry struct {
	path  string
	isDir bool
	size  int64
	mode  os.FileMode
}

// collect gathers every path under root, including directories implied
// by file paths. Caller holds the read lock.
func (m *MemoryFileSystem) collect(root string) []walkEntry {
	isWithin := func(p string) bool {
		if root == "." {
			return true
		}
		return p == root || strings.HasPrefix(p, root+"/")
	}

	// Walking a single file visits just that file.
	if f, ok := m.files[root]; ok {
		return []walkEntry{{path: root, size: int64(len(f.data)), mode: f.mode}}
	}

	dirSet := make(map[string]bool)
	var fileEntries []walkEntry
	for name, f := range m.files {
		if !isWithin(name) {
			continue
		}
		fileEntries = append(fileEntries, walkEntry{path: name, size: int64(len(f.data)), mode: f.mode})
		for p := filepath.Dir(name); p != "." && p != "/" && isWithin(p); p = filepath.Dir(p) {
			dirSet[p] = true
		}
	}
	for d := range m.dirs {
		if isWithin(d) {
			dirSet[d] = true
		}
	}

	if len(fileEntries) == 0 && len(dirSet) == 0 && !m.dirs[root] {
		return nil
	}
	dirSet[root] = true

	entries := make([]walkEntry, 0, len(fileEntries)+len(dirSet))
	for d := range dirSet {
		entries = append(entries, walkEntry{path: d, isDir: true, mode: 0755 | os.ModeDir})
	}
	entries = append(entries, fileEntries...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })
	return entries
}

// memFileWriter implements io.WriteCloser for writing.
type memFileWriter struct {
	fs   *MemoryFileSystem
	name string
	buf  []byte
}

func (f *memFileWriter) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

func (f *memFileWriter) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	if existing, ok := f.fs.files[f.name]; ok {
		existing.data = f.buf
	} else {
		f.fs.files[f.name] = &memFile{data: f.buf, mode: 0644}
	}

	return nil
}

// memFileInfo implements fs.FileInfo.
type memFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (i *memFileInfo) Name() string       { return i.name }
func (i *memFileInfo) Size() int64        { return i.size }
func (i *memFileInfo) Mode() os.FileMode  { return i.mode }
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return i.isDir }
func (i *memFileInfo) Sys() any           { return nil }

// memDirEntry implements fs.DirEntry.
type memDirEntry struct {
	info *memFileInfo
}

func (d memDirEntry) Name() string { return d.info.name }
func (d memDirEntry) IsDir() bool  { return d.info.isDir }
func (d memDirEntry) Type() fs.FileMode {
	if d.info.isDir {
		return fs.ModeDir
	}
	return 0
}
func (d memDirEntry) Info() (fs.FileInfo, error) { return d.info, nil }
