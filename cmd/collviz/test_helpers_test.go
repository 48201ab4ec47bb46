package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
)

// runCLI executes the root command with an isolated runtime directory so the
// test binary's own location never takes part in path resolution.
func runCLI(t *testing.T, args []string, runtimeDir, configPath string) (string, string, error) {
	t.Helper()
	t.Setenv(runtimeDirEnv, "")
	var stdout, stderr syncBuffer
	err := runCLIContext(context.Background(), &stdout, &stderr, args, runtimeDir, configPath)
	return stdout.String(), stderr.String(), err
}

// runCLIContext runs the root command under ctx, writing to the given
// buffers, which long-running commands may fill while the test reads them.
// Callers clear the runtime directory environment variable first.
func runCLIContext(ctx context.Context, stdout, stderr *syncBuffer, args []string, runtimeDir, configPath string) error {
	cmd := newRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	var flags []string
	if runtimeDir != "" {
		flags = append(flags, "--runtime-dir", runtimeDir)
	}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	return cmd.ExecuteContext(ctx)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
