package preflight

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"collviz/internal/settings"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Target names what the checks inspect. RuntimeDir may be empty when the
// caller supplied the settings path directly.
type Target struct {
	RuntimeDir string
	Path       string
}

// RunAll executes every check for target. Checks that depend on an earlier
// one are skipped once it fails.
func RunAll(target Target, logger *slog.Logger) []Result {
	var results []Result

	if target.RuntimeDir != "" {
		runtime := CheckDirectoryAccess("Runtime directory", target.RuntimeDir)
		results = append(results, runtime)
		if !runtime.Passed {
			return results
		}
	}

	if target.Path == "" {
		return append(results, Result{Name: "Settings path", Detail: "could not be determined"})
	}

	plugin := CheckDirectoryAccess("Plugin directory", filepath.Dir(target.Path))
	results = append(results, plugin)
	if !plugin.Passed {
		return results
	}

	file := CheckFileReadable("Settings file", target.Path)
	results = append(results, file)
	if !file.Passed {
		return results
	}

	return append(results, CheckSettingsLoad(target.Path, logger))
}

// CheckSettingsLoad loads the settings file and reports the first failing
// option, if any.
func CheckSettingsLoad(path string, logger *slog.Logger) Result {
	const name = "Settings"
	if _, err := settings.LoadFile(path, logger); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%s)", err, settings.KindOf(err))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("all %d options valid", len(settings.Keys()))}
}
