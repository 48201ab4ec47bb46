package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"collviz/internal/settings"
	"collviz/internal/testsupport"
)

func TestWatchRefusesSecondWatcher(t *testing.T) {
	_, path := testsupport.WriteSettings(t)

	lock := flock.New(watchLockPath(path))
	ok, err := lock.TryLock()
	if err != nil || !ok {
		t.Fatalf("acquire lock: ok=%v err=%v", ok, err)
	}
	t.Cleanup(func() { _ = lock.Unlock() })

	_, _, err = runCLI(t, []string{"watch"}, "", path)
	if err == nil || !strings.Contains(err.Error(), "already running") {
		t.Fatalf("expected watcher contention error, got %v", err)
	}
}

func TestWatchFailsWhenSettingsInvalid(t *testing.T) {
	_, path := testsupport.WriteSettings(t, testsupport.WithoutKey("logLevel"))

	if _, _, err := runCLI(t, []string{"watch"}, "", path); err == nil {
		t.Fatal("expected load error before watching")
	}
}

func TestWatchPrintsReloadedSettings(t *testing.T) {
	_, path := testsupport.WriteSettings(t)
	t.Setenv(runtimeDirEnv, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var stdout, stderr syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- runCLIContext(ctx, &stdout, &stderr, []string{"watch"}, "", path)
	}()

	changed := settings.Default()
	changed.LogLevel = 4
	changed.DrawDistance = 3000
	changed.Wireframe = true

	const want = "Applied settings: logLevel=4 drawDistance=3000 wireframe=1"
	deadline := time.After(10 * time.Second)
	ticker := time.NewTicker(400 * time.Millisecond)
	defer ticker.Stop()
	for !strings.Contains(stdout.String(), want) {
		select {
		case err := <-done:
			t.Fatalf("watch exited early: %v\n%s", err, stderr.String())
		case <-ticker.C:
			// Rewrite until the watcher has registered and picked a change up.
			if err := settings.Write(path, changed); err != nil {
				t.Fatalf("Write returned error: %v", err)
			}
		case <-deadline:
			t.Fatalf("timed out waiting for reload, output %q", stdout.String())
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch returned error after cancel: %v", err)
	}
	requireContains(t, stdout.String(), "Watching "+path)
}

func TestWatchStopsPrinterWhenWatcherFails(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("needs unix directory permissions enforced")
	}
	_, path := testsupport.WriteSettings(t)
	dir := filepath.Dir(path)
	// Without read permission the directory cannot be watched, but the
	// settings file and lock file are still reachable.
	if err := os.Chmod(dir, 0o300); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, _, err := runCLI(t, []string{"watch"}, "", path)
	if err == nil || !strings.Contains(err.Error(), "watch settings directory") {
		t.Fatalf("expected watch setup error, got %v", err)
	}
}
