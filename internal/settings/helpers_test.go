package settings_test

import (
	"bytes"
	"log/slog"
	"testing"

	"collviz/internal/logging"
	"collviz/internal/settings"
	"collviz/internal/testsupport"
)

// recordingLookup serves values from a map and records every key requested.
type recordingLookup struct {
	values map[string]string
	calls  []string
}

func newRecordingLookup() *recordingLookup {
	values := map[string]string{}
	for _, kv := range testsupport.ValidSettings() {
		values[kv[0]] = kv[1]
	}
	return &recordingLookup{values: values}
}

func (l *recordingLookup) Lookup(section, key string) (string, error) {
	l.calls = append(l.calls, key)
	value, ok := l.values[key]
	if !ok || value == "" {
		return "", &settings.Error{Kind: settings.KindKeyAbsent, Section: section, Key: key}
	}
	return value, nil
}

func newTestLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	return logger, &buf
}
