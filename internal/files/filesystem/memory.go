package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files.
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements Provider for in-memory testing.
// Paths are normalized to forward slashes regardless of platform.
type MemoryFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemoryFileSystem creates a new in-memory filesystem containing only
// the given root directory.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
	mfs.AddDir(root)
	return mfs
}

func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// AddDir registers a directory (and its parents) in the filesystem.
func (m *MemoryFileSystem) AddDir(dir string) {
	dir = normalize(dir)
	for dir != "/" && dir != "." && !m.dirs[dir] {
		m.dirs[dir] = true
		dir = path.Dir(dir)
	}
}

// AddFile stores a file with the given content, creating parent directories.
func (m *MemoryFileSystem) AddFile(p string, content []byte) {
	p = normalize(p)
	m.files[p] = content
	m.AddDir(path.Dir(p))
}

func (m *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	content, ok := m.files[normalize(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (m *MemoryFileSystem) ReadDir(p string) ([]FileInfo, error) {
	p = normalize(p)
	if !m.dirs[p] {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}

	var infos []FileInfo
	for fp, content := range m.files {
		if path.Dir(fp) == p {
			infos = append(infos, &memoryFileInfo{
				name:    path.Base(fp),
				size:    int64(len(content)),
				mode:    0644,
				modTime: time.Now(),
			})
		}
	}
	for dir := range m.dirs {
		if dir != p && path.Dir(dir) == p {
			infos = append(infos, &memoryFileInfo{
				name:    path.Base(dir),
				mode:    0755 | fs.ModeDir,
				modTime: time.Now(),
				isDir:   true,
			})
		}
	}

	// Stable order, matching os.ReadDir behavior.
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	return infos, nil
}

func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	p = normalize(p)
	if m.dirs[p] {
		return &memoryFileInfo{
			name:    path.Base(p),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}, nil
	}
	if content, ok := m.files[p]; ok {
		return &memoryFileInfo{
			name:    path.Base(p),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

// String renders the filesystem contents, useful in test failure messages.
func (m *MemoryFileSystem) String() string {
	var b strings.Builder
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(&b, "%s (%d bytes)\n", p, len(m.files[p]))
	}
	return b.String()
}

// Verify MemoryFileSystem implements the interface at compile time
var _ Provider = (*MemoryFileSystem)(nil)
