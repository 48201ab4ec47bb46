package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"collviz/internal/settings"
	"collviz/internal/testsupport"
)

func TestConfigPathUsesRuntimeDir(t *testing.T) {
	runtimeDir := t.TempDir()

	out, _, err := runCLI(t, []string{"config", "path"}, runtimeDir, "")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	want := filepath.Join(runtimeDir, "Data", "SKSE", "Plugins", settings.FileName)
	if strings.TrimSpace(out) != want {
		t.Fatalf("config path = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestConfigPathReadsEnvironment(t *testing.T) {
	runtimeDir := t.TempDir()
	cmd := newRootCommand()
	t.Setenv(runtimeDirEnv, runtimeDir)
	var stdout strings.Builder
	cmd.SetOut(&stdout)
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{"config", "path"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, stdout.String(), filepath.Join(runtimeDir, "Data", "SKSE", "Plugins"))
}

func TestConfigInitAndValidate(t *testing.T) {
	runtimeDir := t.TempDir()

	out, _, err := runCLI(t, []string{"config", "init"}, runtimeDir, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample settings")

	target := filepath.Join(runtimeDir, "Data", "SKSE", "Plugins", settings.FileName)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected settings file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init"}, runtimeDir, "")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected existing file error, got %v", err)
	}
	out, _, err = runCLI(t, []string{"config", "init", "--overwrite"}, runtimeDir, "")
	if err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
	requireContains(t, out, "Previous settings saved to "+target+".bak")

	out, _, err = runCLI(t, []string{"config", "validate"}, runtimeDir, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Settings path: "+target)
	requireContains(t, out, "Settings valid")
}

func TestConfigInitExplicitPath(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", settings.FileName)

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, t.TempDir(), "")
	if err != nil {
		t.Fatalf("config init --path: %v", err)
	}
	requireContains(t, out, target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected settings file at %s: %v", target, err)
	}
}

func TestConfigValidateReportsFailingOption(t *testing.T) {
	_, path := testsupport.WriteSettings(t, testsupport.WithValue("wireframe", "yes"))

	out, _, err := runCLI(t, []string{"config", "validate"}, "", path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, out, "Settings path: "+path)
	requireContains(t, err.Error(), "settings invalid [value_malformed]")
	requireContains(t, err.Error(), "Settings.wireframe")
}

func TestConfigShowFormats(t *testing.T) {
	_, path := testsupport.WriteSettings(t)

	out, _, err := runCLI(t, []string{"config", "show"}, "", path)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "drawDistance")
	requireContains(t, out, "5000")
	requireContains(t, out, "0.25, 0.5, 0.75 (a=1)")

	out, _, err = runCLI(t, []string{"config", "show", "--format", "json"}, "", path)
	if err != nil {
		t.Fatalf("config show json: %v", err)
	}
	requireContains(t, out, `"drawDistance": 5000`)

	out, _, err = runCLI(t, []string{"config", "show", "-f", "toml"}, "", path)
	if err != nil {
		t.Fatalf("config show toml: %v", err)
	}
	requireContains(t, out, "drawDistance = 5000")

	out, _, err = runCLI(t, []string{"config", "show", "-f", "yaml"}, "", path)
	if err != nil {
		t.Fatalf("config show yaml: %v", err)
	}
	requireContains(t, out, "drawDistance: 5000")

	if _, _, err := runCLI(t, []string{"config", "show", "-f", "xml"}, "", path); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestConfigShowFailsWithoutSettings(t *testing.T) {
	_, _, err := runCLI(t, []string{"config", "show"}, t.TempDir(), "")
	if err == nil {
		t.Fatal("expected load error")
	}
	if settings.KindOf(err) != settings.KindFileUnavailable {
		t.Fatalf("expected file_unavailable, got %s (%v)", settings.KindOf(err), err)
	}
}
