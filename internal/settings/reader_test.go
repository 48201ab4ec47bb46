package settings_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"collviz/internal/logging"
	"collviz/internal/settings"
)

func TestReaderBoolAcceptsOnlyZeroAndOne(t *testing.T) {
	cases := []struct {
		raw     string
		want    bool
		wantErr settings.Kind
	}{
		{raw: "1", want: true},
		{raw: "0", want: false},
		{raw: " 1 ", want: true},
		{raw: "2", wantErr: settings.KindValueMalformed},
		{raw: "-1", wantErr: settings.KindValueMalformed},
		{raw: "true", wantErr: settings.KindValueMalformed},
		{raw: "yes", wantErr: settings.KindValueMalformed},
		{raw: "1.0", wantErr: settings.KindValueMalformed},
		{raw: "", wantErr: settings.KindKeyAbsent},
	}
	for _, tc := range cases {
		lookup := newRecordingLookup()
		lookup.values["wireframe"] = tc.raw
		reader := settings.NewReader(lookup, logging.NewNop())

		got, err := reader.Bool("wireframe")
		if tc.wantErr != settings.KindUnknown {
			if err == nil {
				t.Fatalf("Bool(%q) expected %s error, got %v", tc.raw, tc.wantErr, got)
			}
			if kind := settings.KindOf(err); kind != tc.wantErr {
				t.Fatalf("Bool(%q) kind = %s, want %s", tc.raw, kind, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Bool(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("Bool(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestReaderNumericParsing(t *testing.T) {
	lookup := newRecordingLookup()
	lookup.values["count"] = "-42"
	lookup.values["big"] = "4294967296"
	lookup.values["ratio"] = "0.125"
	lookup.values["precise"] = "0.1234567890123"
	lookup.values["words"] = "fast"
	lookup.values["trailing"] = "12abc"
	lookup.values["huge"] = "1e60"
	reader := settings.NewReader(lookup, logging.NewNop())

	if got, err := reader.Int("count"); err != nil || got != -42 {
		t.Fatalf("Int(count) = %d, %v", got, err)
	}
	if got, err := reader.Float("ratio"); err != nil || got != 0.125 {
		t.Fatalf("Float(ratio) = %v, %v", got, err)
	}
	if got, err := reader.Double("precise"); err != nil || got != 0.1234567890123 {
		t.Fatalf("Double(precise) = %v, %v", got, err)
	}

	for _, tc := range []struct {
		name string
		read func() error
	}{
		{"int out of range", func() error { _, err := reader.Int("big"); return err }},
		{"int words", func() error { _, err := reader.Int("words"); return err }},
		{"int trailing garbage", func() error { _, err := reader.Int("trailing"); return err }},
		{"float words", func() error { _, err := reader.Float("words"); return err }},
		{"float out of range", func() error { _, err := reader.Float("huge"); return err }},
		{"double words", func() error { _, err := reader.Double("words"); return err }},
	} {
		err := tc.read()
		if !errors.Is(err, settings.ErrValueMalformed) {
			t.Fatalf("%s: expected ErrValueMalformed, got %v", tc.name, err)
		}
	}
}

func TestReaderStringAndRaw(t *testing.T) {
	lookup := newRecordingLookup()
	lookup.values["label"] = "collision overlay"
	reader := settings.NewReader(lookup, logging.NewNop())

	got, err := reader.String("label")
	if err != nil || got != "collision overlay" {
		t.Fatalf("String(label) = %q, %v", got, err)
	}
	if _, err := reader.Raw("missing"); !errors.Is(err, settings.ErrKeyAbsent) {
		t.Fatalf("expected ErrKeyAbsent for missing key, got %v", err)
	}
}

func TestReaderColor3ShortCircuits(t *testing.T) {
	lookup := newRecordingLookup()
	delete(lookup.values, "dynamicColorG")
	reader := settings.NewReader(lookup, logging.NewNop())

	_, err := reader.Color3("dynamicColor")
	var serr *settings.Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *settings.Error, got %v", err)
	}
	if serr.Key != "dynamicColorG" || serr.Kind != settings.KindKeyAbsent {
		t.Fatalf("unexpected failure: key=%q kind=%s", serr.Key, serr.Kind)
	}
	if diff := cmp.Diff([]string{"dynamicColorR", "dynamicColorG"}, lookup.calls); diff != "" {
		t.Fatalf("unexpected lookups (-want +got):\n%s", diff)
	}
}

func TestReaderVector3ReadsInOrder(t *testing.T) {
	lookup := newRecordingLookup()
	lookup.values["offsetX"] = "1"
	lookup.values["offsetY"] = "-2.5"
	lookup.values["offsetZ"] = "3e2"
	reader := settings.NewReader(lookup, logging.NewNop())

	got, err := reader.Vector3("offset")
	if err != nil {
		t.Fatalf("Vector3 returned error: %v", err)
	}
	if diff := cmp.Diff(settings.Vector3{X: 1, Y: -2.5, Z: 300}, got); diff != "" {
		t.Fatalf("unexpected vector (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"offsetX", "offsetY", "offsetZ"}, lookup.calls); diff != "" {
		t.Fatalf("unexpected lookups (-want +got):\n%s", diff)
	}

	lookup.calls = nil
	lookup.values["offsetX"] = "left"
	if _, err := reader.Vector3("offset"); !errors.Is(err, settings.ErrValueMalformed) {
		t.Fatalf("expected ErrValueMalformed, got %v", err)
	}
	if diff := cmp.Diff([]string{"offsetX"}, lookup.calls); diff != "" {
		t.Fatalf("expected only X to be read (-want +got):\n%s", diff)
	}
}

func TestReaderLogsFailedOption(t *testing.T) {
	logger, buf := newTestLogger(t)
	lookup := newRecordingLookup()
	lookup.values["drawDistance"] = "far"
	reader := settings.NewReader(lookup, logger)

	if _, err := reader.Float("drawDistance"); err == nil {
		t.Fatal("expected error")
	}
	out := buf.String()
	for _, want := range []string{"settings: failed to read float config option", "option=drawDistance", "kind=value_malformed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log to contain %q, got %q", want, out)
		}
	}
}

func TestErrorMessageNamesOption(t *testing.T) {
	lookup := newRecordingLookup()
	lookup.values["logLevel"] = "loud"
	reader := settings.NewReader(lookup, logging.NewNop())

	_, err := reader.Int("logLevel")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "option malformed: Settings.logLevel (int)") {
		t.Fatalf("unexpected error message: %q", msg)
	}
	var serr *settings.Error
	if !errors.As(err, &serr) || serr.Type != "int" {
		t.Fatalf("expected typed error with type int, got %#v", err)
	}
}
