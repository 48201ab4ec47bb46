package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackupCopiesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collviz_vr.ini")
	content := []byte("[Settings]\nlogLevel=2\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	backup, err := Backup(path)
	if err != nil {
		t.Fatal(err)
	}
	if backup != path+BackupSuffix {
		t.Fatalf("backup path = %q", backup)
	}
	got, err := os.ReadFile(backup)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
	info, err := os.Stat(backup)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %o, want 600", info.Mode().Perm())
	}
}

func TestBackupMissingFile(t *testing.T) {
	backup, err := Backup(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if backup != "" {
		t.Fatalf("expected no backup, got %q", backup)
	}
}

func TestCopyVerifiedMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := CopyVerified(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"), 0o644); err == nil {
		t.Fatal("expected error for missing source")
	}
}
