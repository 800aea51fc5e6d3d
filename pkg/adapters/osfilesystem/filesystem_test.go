package osfilesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFileSystem_CreateNew(t *testing.T) {
	fsys := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testPath := filepath.Join(tmpDir, "test.txt")
	if err := fsys.CreateNew(testPath); err != nil {
		t.Fatalf("CreateNew failed: %v", err)
	}

	info, err := os.Stat(testPath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}

	// Second call must fail with an already-exists error
	err = fsys.CreateNew(testPath)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected fs.ErrExist, got %v", err)
	}
}

func TestFileSystem_Mkdir(t *testing.T) {
	fsys := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Missing parent
	err = fsys.Mkdir(filepath.Join(tmpDir, "a", "b"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist for missing parent, got %v", err)
	}

	testPath := filepath.Join(tmpDir, "a")
	if err := fsys.Mkdir(testPath); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := fsys.Mkdir(testPath); !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected fs.ErrExist, got %v", err)
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	fsys := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testPath := filepath.Join(tmpDir, "a", "b", "c")
	err = fsys.MkdirAll(testPath)
	if err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	exists, err := fsys.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}
}

func TestFileSystem_Exists(t *testing.T) {
	fsys := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Test existing file
	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	exists, err := fsys.Exists(testPath)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	// Test non-existing file
	exists, err = fsys.Exists(filepath.Join(tmpDir, "nonexistent.txt"))
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}
}

func TestFileSystem_RemoveFile(t *testing.T) {
	fsys := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testPath := filepath.Join(tmpDir, "test.txt")
	os.WriteFile(testPath, []byte("test"), 0644)

	if err := fsys.RemoveFile(testPath); err != nil {
		t.Fatalf("RemoveFile failed: %v", err)
	}

	exists, _ := fsys.Exists(testPath)
	if exists {
		t.Error("expected file to be removed")
	}

	if err := fsys.RemoveFile(testPath); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFileSystem_RemoveAllMissing(t *testing.T) {
	fsys := New()
	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	tree := filepath.Join(tmpDir, "tree")
	os.MkdirAll(filepath.Join(tree, "a", "b"), 0755)

	if err := fsys.RemoveAll(tree); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	if err := fsys.RemoveAll(tree); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFileSystem_RemoveFileRefusesDirectory(t *testing.T) {
	fsys := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dir := filepath.Join(tmpDir, "empty")
	os.Mkdir(dir, 0755)

	if err := fsys.RemoveFile(dir); err == nil {
		t.Fatal("expected RemoveFile on a directory to fail")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory should still exist: %v", err)
	}
}

func TestFileSystem_RemoveDir(t *testing.T) {
	fsys := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dir := filepath.Join(tmpDir, "populated")
	os.Mkdir(dir, 0755)
	os.WriteFile(filepath.Join(dir, "child"), nil, 0644)

	if err := fsys.RemoveDir(dir); err == nil {
		t.Fatal("expected RemoveDir on a populated directory to fail")
	}

	os.Remove(filepath.Join(dir, "child"))
	if err := fsys.RemoveDir(dir); err != nil {
		t.Fatalf("RemoveDir failed: %v", err)
	}
	if err := fsys.RemoveDir(dir); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFileSystem_Readlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	fsys := New()

	tmpDir, err := os.MkdirTemp("", "osfilesystem_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink("target", link); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	target, err := fsys.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink failed: %v", err)
	}
	if target != "target" {
		t.Errorf("expected %q, got %q", "target", target)
	}

	info, err := fsys.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("expected Lstat to report a symlink")
	}
	if _, err := fsys.Stat(link); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected Stat of dangling link to fail with fs.ErrNotExist, got %v", err)
	}
}
