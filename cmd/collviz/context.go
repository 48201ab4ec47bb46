package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"collviz/internal/logging"
	"collviz/internal/settings"
)

const runtimeDirEnv = "COLLVIZ_RUNTIME_DIR"

type globalFlags struct {
	config     string
	runtimeDir string
	logFormat  string
	logFile    string
	logSource  bool
	verbose    bool
}

type commandContext struct {
	flags *globalFlags

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	resolverOnce sync.Once
	resolver     *settings.PathResolver

	settingsOnce sync.Once
	options      *settings.Options
	settingsErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureLogger builds the CLI logger writing to w, or to --log-file when
// set. The base handler accepts everything; the effective level is applied
// as an override so it can follow the loaded logLevel setting.
func (c *commandContext) ensureLogger(w io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		opts := logging.Options{
			Level:       "debug",
			Format:      c.flags.logFormat,
			Writer:      w,
			Development: c.flags.logSource,
		}
		if path := strings.TrimSpace(c.flags.logFile); path != "" {
			opts.Writer = nil
			opts.OutputPaths = []string{path}
		}
		base, err := logging.New(opts)
		if err != nil {
			c.loggerErr = err
			return
		}
		level := slog.LevelInfo
		if c.flags.verbose {
			level = slog.LevelDebug
		}
		c.logger = logging.WithLevelOverride(base, level)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// runtimeDir reports the base directory from the flag or environment, or
// empty when neither is set.
func (c *commandContext) runtimeDir() string {
	if dir := strings.TrimSpace(c.flags.runtimeDir); dir != "" {
		return dir
	}
	return strings.TrimSpace(os.Getenv(runtimeDirEnv))
}

func (c *commandContext) baseDir() (string, error) {
	if dir := c.runtimeDir(); dir != "" {
		return dir, nil
	}
	return settings.RuntimeDirectory()
}

// settingsPath returns the --config path when given, otherwise the path
// derived from the runtime directory.
func (c *commandContext) settingsPath() (string, error) {
	if explicit := strings.TrimSpace(c.flags.config); explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolve settings path: %w", err)
		}
		return abs, nil
	}
	c.resolverOnce.Do(func() {
		c.resolver = settings.NewPathResolver(c.baseDir, c.log())
	})
	return c.resolver.Resolve()
}

// ensureSettings resolves and loads the settings file once per invocation.
// A successful load also applies the logLevel setting to the CLI logger
// unless --verbose was given.
func (c *commandContext) ensureSettings() (*settings.Options, error) {
	c.settingsOnce.Do(func() {
		path, err := c.settingsPath()
		if err != nil {
			c.settingsErr = err
			return
		}
		opts, err := settings.LoadFile(path, c.log())
		if err != nil {
			c.settingsErr = fmt.Errorf("load settings: %w", err)
			return
		}
		c.options = &opts
		if !c.flags.verbose && c.logger != nil {
			c.logger = logging.WithLevelOverride(c.logger, logging.LevelForOption(opts.LogLevel))
		}
	})
	return c.options, c.settingsErr
}

func (c *commandContext) settingsValue() (settings.Options, error) {
	opts, err := c.ensureSettings()
	if err != nil {
		return settings.Options{}, err
	}
	if opts == nil {
		return settings.Options{}, errors.New("settings not loaded")
	}
	return *opts, nil
}

func shouldSkipSettings(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipSettingsLoad"] == "true" {
			return true
		}
	}
	return false
}

func flagValue(value bool) string {
	if value {
		return "1"
	}
	return "0"
}
