package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureDirectoryExists(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name        string
		filePath    string
		expectError bool
	}{
		{
			name:        "current directory",
			filePath:    "test.txt",
			expectError: false,
		},
		{
			name:        "nested absolute path",
			filePath:    filepath.Join(tempDir, "level1", "level2", "test.txt"),
			expectError: false,
		},
		{
			name:        "directory already exists",
			filePath:    filepath.Join(tempDir, "test.txt"),
			expectError: false,
		},
		{
			name:        "path with unicode characters",
			filePath:    filepath.Join(tempDir, "测试目录", "测试文件.txt"),
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureDirectoryExists(tt.filePath)

			if (err != nil) != tt.expectError {
				t.Errorf("EnsureDirectoryExists(%q) error = %v, expectError = %v",
					tt.filePath, err, tt.expectError)
				return
			}

			if !tt.expectError {
				dir := filepath.Dir(tt.filePath)
				if dir != "." {
					if _, err := os.Stat(dir); os.IsNotExist(err) {
						t.Errorf("EnsureDirectoryExists(%q) did not create directory %q",
							tt.filePath, dir)
					}
				}
			}
		})
	}
}

func TestEnsureDirectoryExists_PermissionDenied(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("Skipping permission test when running as root")
	}

	tempDir := t.TempDir()
	readOnlyDir := filepath.Join(tempDir, "readonly")
	os.MkdirAll(readOnlyDir, 0o755)
	os.Chmod(readOnlyDir, 0o444)
	defer os.Chmod(readOnlyDir, 0o755)

	if err := EnsureDirectoryExists(filepath.Join(readOnlyDir, "subdir", "test.txt")); err == nil {
		t.Error("EnsureDirectoryExists() should fail under a read-only parent")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("file content = %q, expected %q", data, "first")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat written file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("file permissions = %o, expected %o", perm, 0o644)
	}
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteFileAtomic(path, []byte("old content"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("file content = %q, expected full replacement", data)
	}
}

func TestWriteFileAtomic_NoTemporaryLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	for range 3 {
		if err := WriteFileAtomic(path, []byte("content"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, f := range files {
		if strings.Contains(f.Name(), ".tmp-") {
			t.Errorf("temporary file left behind: %s", f.Name())
		}
	}
}

func TestWriteFileAtomic_MissingDirectoryPreservesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does-not-exist", "out.json")

	if err := WriteFileAtomic(path, []byte("content"), 0o644); err == nil {
		t.Fatal("WriteFileAtomic() should fail when the parent directory is missing")
	}
}

func TestWriteFileAtomic_FailedWriteKeepsPreviousFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("Skipping permission test when running as root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := WriteFileAtomic(path, []byte("valid"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	// Make the directory unwritable so the temp file cannot be created.
	os.Chmod(dir, 0o555)
	defer os.Chmod(dir, 0o755)

	if err := WriteFileAtomic(path, []byte("replacement"), 0o644); err == nil {
		t.Fatal("WriteFileAtomic() should fail in a read-only directory")
	}

	os.Chmod(dir, 0o755)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("previous file unreadable after failed write: %v", err)
	}
	if string(data) != "valid" {
		t.Errorf("previous file content = %q, expected untouched %q", data, "valid")
	}
}
