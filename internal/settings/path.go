package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"collviz/internal/logging"
)

// FileName is the settings file name inside the plugin directory.
const FileName = "collviz_vr.ini"

// PluginDir is the plugin directory relative to the host runtime directory.
var PluginDir = filepath.Join("Data", "SKSE", "Plugins")

// BaseDirFunc reports the host runtime directory the settings path is
// derived from.
type BaseDirFunc func() (string, error)

// RuntimeDirectory returns the directory holding the running executable,
// which is where the host game keeps its Data tree.
func RuntimeDirectory() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolvePath derives the settings file path from a runtime directory.
func ResolvePath(baseDir string) (string, error) {
	baseDir = strings.TrimSpace(baseDir)
	if baseDir == "" {
		return "", &Error{Kind: KindPathUnavailable, Err: errors.New("runtime directory is empty")}
	}
	absolute, err := filepath.Abs(baseDir)
	if err != nil {
		return "", &Error{Kind: KindPathUnavailable, Err: fmt.Errorf("resolve absolute path for %q: %w", baseDir, err)}
	}
	return filepath.Join(absolute, PluginDir, FileName), nil
}

// PathResolver memoizes the settings path for the life of the process.
//
// The base directory lookup runs until it first succeeds; after that the
// stored path is returned without consulting the BaseDirFunc again. A failed
// lookup leaves the memo empty so a later call can retry.
type PathResolver struct {
	baseDir BaseDirFunc
	logger  *slog.Logger

	mu   sync.Mutex
	path string
}

// NewPathResolver builds a resolver. A nil baseDir uses RuntimeDirectory.
func NewPathResolver(baseDir BaseDirFunc, logger *slog.Logger) *PathResolver {
	if baseDir == nil {
		baseDir = RuntimeDirectory
	}
	return &PathResolver{
		baseDir: baseDir,
		logger:  logging.NewComponentLogger(logger, "settings"),
	}
}

// Resolve returns the memoized settings path, computing it on first success.
func (r *PathResolver) Resolve() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.path != "" {
		return r.path, nil
	}

	base, err := r.baseDir()
	if err != nil {
		return "", &Error{Kind: KindPathUnavailable, Err: err}
	}
	path, err := ResolvePath(base)
	if err != nil {
		return "", err
	}
	r.path = path
	r.logger.Info("settings path resolved",
		logging.String(logging.FieldEventType, "settings.path_resolved"),
		logging.String(logging.FieldPath, path),
	)
	return path, nil
}
