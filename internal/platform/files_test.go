package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.mp4")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestFindMergedFile(t *testing.T) {
	dir := t.TempDir()
	merged := filepath.Join(dir, "Clip.mp4")
	if err := os.WriteFile(merged, []byte("video"), 0o644); err != nil {
		t.Fatalf("write merged file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Other.mp4"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write other file: %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"existing file", merged, merged},
		{"audio part", filepath.Join(dir, "Clip.f140.m4a"), merged},
		{"video part", filepath.Join(dir, "Clip.f137.mp4"), merged},
		{"dash part with suffix", filepath.Join(dir, "Clip.f399-1.mp4.part"), merged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindMergedFile(tt.input)
			if err != nil {
				t.Fatalf("FindMergedFile(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FindMergedFile(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindMergedFile_NotFound(t *testing.T) {
	dir := t.TempDir()

	if _, err := FindMergedFile(""); err == nil {
		t.Error("Expected error for empty path")
	}
	if _, err := FindMergedFile(filepath.Join(dir, "Missing.f140.m4a")); err == nil {
		t.Error("Expected error when nothing was merged")
	}
	if _, err := FindMergedFile(filepath.Join(dir, "nope", "Clip.mp4")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
