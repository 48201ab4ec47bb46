package settings

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-ini/ini"
	"github.com/gofrs/flock"

	"collviz/internal/fileutil"
)

//go:embed sample_settings.ini
var sampleSettings string

// ErrExists is returned by WriteSample when the target exists and overwrite
// was not requested.
var ErrExists = errors.New("settings file already exists")

// Sample returns the commented sample settings file.
func Sample() string {
	return sampleSettings
}

func init() {
	// Marshal output must stay key=value like the hand-edited files.
	ini.PrettyFormat = false
	ini.PrettyEqual = false
}

// Marshal renders opts as a [Settings] INI document that Load reads back to
// the same values. Color alpha is not stored.
func Marshal(opts Options) ([]byte, error) {
	values := map[string]string{
		KeyLogLevel:                            strconv.Itoa(opts.LogLevel),
		KeyDrawDistance:                        formatFloat(opts.DrawDistance),
		KeyWireframe:                           formatFlag(opts.Wireframe),
		KeyInflateByConvexRadius:               formatFlag(opts.InflateByConvexRadius),
		KeyDedupConvexVertices:                 formatFlag(opts.DedupConvexVertices),
		KeyDedupConvexVerticesThreshold:        formatFloat(opts.DedupConvexVerticesThreshold),
		KeyDedupConvexVerticesThresholdCleanup: formatFloat(opts.DedupConvexVerticesThresholdCleanup),
		KeyDuplicatePlanarShapeVertices:        formatFlag(opts.DuplicatePlanarShapeVertices),
		KeyResetOnToggle:                       formatFlag(opts.ResetOnToggle),
	}
	for _, c := range []struct {
		name  string
		color Color4
	}{{KeyDynamicColor, opts.DynamicColor}, {KeyFixedColor, opts.FixedColor}} {
		values[c.name+"R"] = formatFloat(c.color.R)
		values[c.name+"G"] = formatFloat(c.color.G)
		values[c.name+"B"] = formatFloat(c.color.B)
	}

	file := ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})
	section, err := file.NewSection(Section)
	if err != nil {
		return nil, fmt.Errorf("create [%s] section: %w", Section, err)
	}
	for _, key := range Keys() {
		if _, err := section.NewKey(key, values[key]); err != nil {
			return nil, fmt.Errorf("set %s: %w", key, err)
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode ini: %w", err)
	}
	return buf.Bytes(), nil
}

// Write stores opts at path, replacing any existing file atomically. A
// replaced file is kept at fileutil.BackupPath(path).
func Write(path string, opts Options) error {
	data, err := Marshal(opts)
	if err != nil {
		return err
	}
	return writeLocked(path, data, true)
}

// WriteSample writes the sample settings file to path. It fails with
// ErrExists when the file is present and overwrite is false.
func WriteSample(path string, overwrite bool) error {
	return writeLocked(path, []byte(sampleSettings), overwrite)
}

// LockPath returns the advisory lock file guarding writes to path.
func LockPath(path string) string {
	return path + ".lock"
}

func writeLocked(path string, data []byte, overwrite bool) error {
	if strings.TrimSpace(path) == "" {
		return &Error{Kind: KindPathUnavailable, Err: errors.New("no settings path")}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock settings file: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		if _, err := fileutil.Backup(path); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check settings path: %w", err)
	}

	if err := atomicWrite(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func formatFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
