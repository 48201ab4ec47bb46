package testsupport

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// SettingsOption customizes a generated settings file.
type SettingsOption func(*settingsBuilder)

type settingsBuilder struct {
	values  map[string]string
	omitted map[string]bool
	extra   []string
}

// ValidSettings returns the raw key/value pairs of a complete, valid
// [Settings] section in load order.
func ValidSettings() [][2]string {
	return [][2]string{
		{"logLevel", "2"},
		{"drawDistance", "5000.0"},
		{"wireframe", "1"},
		{"inflateByConvexRadius", "0"},
		{"dedupConvexVertices", "1"},
		{"dedupConvexVerticesThreshold", "0.0005"},
		{"dedupConvexVerticesThresholdCleanup", "0.002"},
		{"duplicatePlanarShapeVertices", "0"},
		{"resetOnToggle", "1"},
		{"dynamicColorR", "0.25"},
		{"dynamicColorG", "0.5"},
		{"dynamicColorB", "0.75"},
		{"fixedColorR", "1.0"},
		{"fixedColorG", "0.0"},
		{"fixedColorB", "0.5"},
	}
}

// WithValue replaces the raw value written for key.
func WithValue(key, value string) SettingsOption {
	return func(b *settingsBuilder) {
		b.values[key] = value
	}
}

// WithoutKey leaves key out of the file.
func WithoutKey(key string) SettingsOption {
	return func(b *settingsBuilder) {
		b.omitted[key] = true
	}
}

// WithExtraLines appends raw lines after the generated section.
func WithExtraLines(lines ...string) SettingsOption {
	return func(b *settingsBuilder) {
		b.extra = append(b.extra, lines...)
	}
}

// SettingsText renders a settings file from ValidSettings and opts.
func SettingsText(opts ...SettingsOption) string {
	b := &settingsBuilder{values: map[string]string{}, omitted: map[string]bool{}}
	for _, opt := range opts {
		opt(b)
	}

	var out strings.Builder
	out.WriteString("[Settings]\n")
	for _, kv := range ValidSettings() {
		key, value := kv[0], kv[1]
		if b.omitted[key] {
			continue
		}
		if override, ok := b.values[key]; ok {
			value = override
		}
		fmt.Fprintf(&out, "%s=%s\n", key, value)
	}
	for _, line := range b.extra {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.String()
}

// WriteSettings writes a settings file built from opts under a fresh runtime
// directory laid out like the game's, returning the runtime directory and
// the settings file path.
func WriteSettings(t testing.TB, opts ...SettingsOption) (string, string) {
	t.Helper()

	runtimeDir := t.TempDir()
	path := filepath.Join(runtimeDir, "Data", "SKSE", "Plugins", "collviz_vr.ini")
	WriteFile(t, path, []byte(SettingsText(opts...)))
	return runtimeDir, path
}
