package filesystem

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/filer/pkg/types"
)

// MemoryFS implements types.FS with in-memory storage. Directory
// entries keep insertion order, which stands in for the unspecified
// listing order of a real filesystem and keeps sequence-number tests
// deterministic.
type MemoryFS struct {
	dirs       map[string][]*memNode
	files      map[string]*memNode
	errorPaths map[string]error
}

type memNode struct {
	name    string
	isDir   bool
	content []byte
	modTime time.Time
}

// NewMemory creates an empty in-memory filesystem
func NewMemory() *MemoryFS {
	return &MemoryFS{
		dirs:       make(map[string][]*memNode),
		files:      make(map[string]*memNode),
		errorPaths: make(map[string]error),
	}
}

// AddFile registers a file with the given content. Parent directory
// entries are created implicitly.
func (m *MemoryFS) AddFile(path string, content []byte) {
	path = filepath.Clean(path)
	node := &memNode{
		name:    filepath.Base(path),
		content: content,
		modTime: time.Now(),
	}
	m.files[path] = node
	dir := filepath.Dir(path)
	m.dirs[dir] = append(m.dirs[dir], node)
}

// AddDir registers an (empty) directory. It also shows up as an entry
// in its parent's listing, like any other name.
func (m *MemoryFS) AddDir(path string) {
	path = filepath.Clean(path)
	if _, ok := m.dirs[path]; ok {
		return
	}
	m.dirs[path] = []*memNode{}
	if parent := filepath.Dir(path); parent != path {
		if _, ok := m.dirs[parent]; ok {
			m.dirs[parent] = append(m.dirs[parent], &memNode{
				name:    filepath.Base(path),
				isDir:   true,
				modTime: time.Now(),
			})
		}
	}
}

// FailWith makes any access to path return err
func (m *MemoryFS) FailWith(path string, err error) {
	m.errorPaths[filepath.Clean(path)] = err
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	name = filepath.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return nil, err
	}
	if node, ok := m.files[name]; ok {
		return &memFileInfo{node: node}, nil
	}
	if _, ok := m.dirs[name]; ok {
		return &memFileInfo{node: &memNode{name: filepath.Base(name), isDir: true}}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	name = filepath.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return nil, err
	}
	node, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return node.content, nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	name = filepath.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return nil, err
	}
	nodes, ok := m.dirs[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	entries := make([]fs.DirEntry, 0, len(nodes))
	for _, node := range nodes {
		entries = append(entries, &memDirEntry{node: node})
	}
	return entries, nil
}

var _ types.FS = (*MemoryFS)(nil)

type memDirEntry struct {
	node *memNode
}

func (e *memDirEntry) Name() string               { return e.node.name }
func (e *memDirEntry) IsDir() bool                { return e.node.isDir }
func (e *memDirEntry) Type() fs.FileMode          { return e.mode().Type() }
func (e *memDirEntry) Info() (fs.FileInfo, error) { return &memFileInfo{node: e.node}, nil }

func (e *memDirEntry) mode() fs.FileMode {
	if e.node.isDir {
		return fs.ModeDir | 0755
	}
	return 0644
}

type memFileInfo struct {
	node *memNode
}

func (i *memFileInfo) Name() string { return i.node.name }
func (i *memFileInfo) Size() int64  { return int64(len(i.node.content)) }
func (i *memFileInfo) Mode() fs.FileMode {
	if i.node.isDir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (i *memFileInfo) ModTime() time.Time { return i.node.modTime }
func (i *memFileInfo) IsDir() bool        { return i.node.isDir }
func (i *memFileInfo) Sys() interface{}   { return nil }
