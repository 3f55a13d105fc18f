package patchfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	content := "line one\n\tline two\n"

	if err := Save(path, content); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != content {
		t.Errorf("Load() = %q, want %q", got, content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.txt")
	if err := Save(path, "x"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestSavePreservesPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("old"), 0755); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := Save(path, "new"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %o, want 755", info.Mode().Perm())
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, "out.txt"), "content"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.txt" {
		t.Errorf("dir entries = %v, want only out.txt", entries)
	}
}

func TestVersionedPath(t *testing.T) {
	tests := []struct {
		name     string
		original string
		suffix   string
		want     string
	}{
		{"suffix with underscore", "/work/app.py", "_v1.0", "/work/app_v1.0.py"},
		{"suffix without underscore", "/work/app.py", "v2", "/work/app_v2.py"},
		{"no extension", "/work/Makefile", "_v2", "/work/Makefile_v2"},
		{"empty suffix keeps original", "/work/app.py", "", "/work/app.py"},
		{"dotfile", "/work/.env", "_v2", "/work/.env_v2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VersionedPath(tt.original, tt.suffix, "out", "patched_output.txt")
			if got != tt.want {
				t.Errorf("VersionedPath = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("no original falls back to output dir", func(t *testing.T) {
		got := VersionedPath("", "_v2", "out", "patched_output.txt")
		if got != filepath.Join("out", "patched_output.txt") {
			t.Errorf("VersionedPath = %q", got)
		}
	})
}
