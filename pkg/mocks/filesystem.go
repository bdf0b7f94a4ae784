package mocks

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/user/playblast/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem keeping files and
// directories in maps.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string]bool
	dirs  map[string]bool

	// Removed records every successful Remove in order.
	Removed []string

	ExistsFunc   func(path string) (bool, error)
	IsDirFunc    func(path string) (bool, error)
	MkdirAllFunc func(path string) error
	ListFunc     func(dir, pattern string) ([]string, error)
	RemoveFunc   func(path string) error
}

// NewFileSystem creates an empty mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string]bool),
		dirs:  make(map[string]bool),
	}
}

// AddFile registers a file (and its parent directory) as existing.
func (m *FileSystem) AddFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = true
	m.dirs[filepath.Dir(path)] = true
}

// AddDir registers a directory as existing.
func (m *FileSystem) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
}

// HasFile reports whether a file is currently registered.
func (m *FileSystem) HasFile(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files[path]
}

// HasDir reports whether a directory is currently registered.
func (m *FileSystem) HasDir(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[path]
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files[path] || m.dirs[path], nil
}

func (m *FileSystem) IsDir(path string) (bool, error) {
	if m.IsDirFunc != nil {
		return m.IsDirFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[path], nil
}

func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
	return nil
}

func (m *FileSystem) List(dir, pattern string) ([]string, error) {
	if m.ListFunc != nil {
		return m.ListFunc(dir, pattern)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.dirs[dir] {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}
	var paths []string
	prefix := dir + string(filepath.Separator)
	for path := range m.files {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		name := path[len(prefix):]
		if strings.Contains(name, string(filepath.Separator)) {
			continue
		}
		ok, err := filepath.Match(pattern, name)
		if err != nil {
			return nil, err
		}
		if ok {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (m *FileSystem) Remove(path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.files[path]:
		delete(m.files, path)
	case m.dirs[path]:
		delete(m.dirs, path)
	default:
		return fmt.Errorf("not found: %s", path)
	}
	m.Removed = append(m.Removed, path)
	return nil
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
