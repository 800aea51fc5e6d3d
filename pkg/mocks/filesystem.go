package mocks

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/user/idemfs/pkg/ports"
)

// Call records a single method invocation on FileSystem.
type Call struct {
	Method string
	Path   string
}

// FileSystem is an in-memory ports.FileSystem. It records every call and
// simulates directories, files and symbolic links. Errors maps a path to an
// error returned by any method called with that path, checked first.
type FileSystem struct {
	mu       sync.Mutex
	dirs     map[string]bool
	files    map[string]bool
	symlinks map[string]string

	Errors map[string]error
	Calls  []Call
}

// NewFileSystem creates a new mock FileSystem containing only the root.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		dirs:     map[string]bool{"/": true, ".": true},
		files:    make(map[string]bool),
		symlinks: make(map[string]string),
		Errors:   make(map[string]error),
	}
}

// AddDir adds a directory and its parents (for test setup).
func (m *FileSystem) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := filepath.Clean(path); !m.dirs[p]; p = filepath.Dir(p) {
		m.dirs[p] = true
	}
}

// AddFile adds a file, creating its parents (for test setup).
func (m *FileSystem) AddFile(path string) {
	m.AddDir(filepath.Dir(path))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = true
}

// AddSymlink adds a symbolic link pointing at target (for test setup).
func (m *FileSystem) AddSymlink(path, target string) {
	m.AddDir(filepath.Dir(path))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.symlinks[filepath.Clean(path)] = target
}

// HasDir reports whether path is a directory (for test verification).
func (m *FileSystem) HasDir(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirs[filepath.Clean(path)]
}

// HasFile reports whether path is a file (for test verification).
func (m *FileSystem) HasFile(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[filepath.Clean(path)]
}

// HasSymlink reports whether path is a symbolic link (for test verification).
func (m *FileSystem) HasSymlink(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.symlinks[filepath.Clean(path)]
	return ok
}

// Methods returns the recorded method names in call order.
func (m *FileSystem) Methods() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Method
	}
	return out
}

func (m *FileSystem) Mkdir(path string) error {
	p, err := m.begin("Mkdir", path)
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	if m.existsLocked(p) {
		return pathErr("mkdir", path, fs.ErrExist)
	}
	if !m.dirs[filepath.Dir(p)] {
		return pathErr("mkdir", path, fs.ErrNotExist)
	}
	m.dirs[p] = true
	return nil
}

func (m *FileSystem) MkdirAll(path string) error {
	p, err := m.begin("MkdirAll", path)
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	var missing []string
	for q := p; !m.dirs[q]; q = filepath.Dir(q) {
		if m.files[q] || m.hasLinkLocked(q) {
			return pathErr("mkdir", q, syscall.ENOTDIR)
		}
		missing = append(missing, q)
		if filepath.Dir(q) == q {
			break
		}
	}
	for _, q := range missing {
		m.dirs[q] = true
	}
	return nil
}

func (m *FileSystem) CreateNew(path string) error {
	p, err := m.begin("CreateNew", path)
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	if m.existsLocked(p) {
		return pathErr("open", path, fs.ErrExist)
	}
	if !m.dirs[filepath.Dir(p)] {
		return pathErr("open", path, fs.ErrNotExist)
	}
	m.files[p] = true
	return nil
}

func (m *FileSystem) RemoveDir(path string) error {
	p, err := m.begin("RemoveDir", path)
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	if !m.existsLocked(p) {
		return pathErr("rmdir", path, fs.ErrNotExist)
	}
	if !m.dirs[p] {
		return pathErr("rmdir", path, syscall.ENOTDIR)
	}
	if m.hasChildrenLocked(p) {
		return pathErr("rmdir", path, ports.ErrDirNotEmpty)
	}
	delete(m.dirs, p)
	return nil
}

func (m *FileSystem) RemoveAll(path string) error {
	p, err := m.begin("RemoveAll", path)
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	if !m.existsLocked(p) {
		return pathErr("lstat", path, fs.ErrNotExist)
	}
	prefix := p + string(filepath.Separator)
	for _, set := range []map[string]bool{m.dirs, m.files} {
		for q := range set {
			if q == p || strings.HasPrefix(q, prefix) {
				delete(set, q)
			}
		}
	}
	for q := range m.symlinks {
		if q == p || strings.HasPrefix(q, prefix) {
			delete(m.symlinks, q)
		}
	}
	return nil
}

func (m *FileSystem) RemoveFile(path string) error {
	p, err := m.begin("RemoveFile", path)
	defer m.mu.Unlock()
	if err != nil {
		return err
	}
	switch {
	case m.files[p]:
		delete(m.files, p)
	case m.hasLinkLocked(p):
		delete(m.symlinks, p)
	case m.dirs[p]:
		return pathErr("unlink", path, syscall.EISDIR)
	default:
		return pathErr("unlink", path, fs.ErrNotExist)
	}
	return nil
}

func (m *FileSystem) Lstat(path string) (os.FileInfo, error) {
	p, err := m.begin("Lstat", path)
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return m.infoLocked("lstat", path, p)
}

func (m *FileSystem) Stat(path string) (os.FileInfo, error) {
	p, err := m.begin("Stat", path)
	defer m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for hops := 0; m.hasLinkLocked(p); hops++ {
		if hops > 40 {
			return nil, pathErr("stat", path, syscall.ELOOP)
		}
		p = m.resolveLocked(p)
	}
	return m.infoLocked("stat", path, p)
}

func (m *FileSystem) Readlink(path string) (string, error) {
	p, err := m.begin("Readlink", path)
	defer m.mu.Unlock()
	if err != nil {
		return "", err
	}
	target, ok := m.symlinks[p]
	if !ok {
		if m.existsLocked(p) {
			return "", pathErr("readlink", path, syscall.EINVAL)
		}
		return "", pathErr("readlink", path, fs.ErrNotExist)
	}
	return target, nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	p, err := m.begin("Exists", path)
	defer m.mu.Unlock()
	if err != nil {
		return false, err
	}
	for hops := 0; m.hasLinkLocked(p) && hops <= 40; hops++ {
		p = m.resolveLocked(p)
	}
	return m.existsLocked(p), nil
}

// begin locks the mock, records the call and returns the cleaned path along
// with any injected error. Callers must unlock.
func (m *FileSystem) begin(method, path string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, Call{Method: method, Path: path})
	if err, ok := m.Errors[path]; ok {
		return "", err
	}
	return filepath.Clean(path), nil
}

func (m *FileSystem) existsLocked(p string) bool {
	return m.dirs[p] || m.files[p] || m.hasLinkLocked(p)
}

func (m *FileSystem) hasLinkLocked(p string) bool {
	_, ok := m.symlinks[p]
	return ok
}

func (m *FileSystem) resolveLocked(p string) string {
	target := m.symlinks[p]
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(filepath.Dir(p), target)
}

func (m *FileSystem) hasChildrenLocked(p string) bool {
	for _, set := range []map[string]bool{m.dirs, m.files} {
		for q := range set {
			if q != p && filepath.Dir(q) == p {
				return true
			}
		}
	}
	for q := range m.symlinks {
		if filepath.Dir(q) == p {
			return true
		}
	}
	return false
}

func (m *FileSystem) infoLocked(op, path, p string) (os.FileInfo, error) {
	switch {
	case m.dirs[p]:
		return fileInfo{name: filepath.Base(p), mode: fs.ModeDir | 0o755}, nil
	case m.files[p]:
		return fileInfo{name: filepath.Base(p), mode: 0o644}, nil
	case m.hasLinkLocked(p):
		return fileInfo{name: filepath.Base(p), mode: fs.ModeSymlink | 0o777}, nil
	}
	return nil, pathErr(op, path, fs.ErrNotExist)
}

func pathErr(op, path string, err error) error {
	return &os.PathError{Op: op, Path: path, Err: err}
}

type fileInfo struct {
	name string
	mode fs.FileMode
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return 0 }
func (fi fileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi fileInfo) ModTime() time.Time { return time.Time{} }
func (fi fileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi fileInfo) Sys() any           { return nil }

var _ ports.FileSystem = (*FileSystem)(nil)
