package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why an option could not be read.
type Kind int

const (
	KindUnknown Kind = iota
	// KindPathUnavailable means the runtime base directory could not be
	// determined, so no settings path exists.
	KindPathUnavailable
	// KindFileUnavailable means the settings file is missing, unreadable or
	// not parseable as INI.
	KindFileUnavailable
	// KindKeyAbsent means the section or key is missing, or its value is empty.
	KindKeyAbsent
	// KindValueMalformed means the value does not parse as the option's type.
	KindValueMalformed
	// KindValueTruncated means the value is longer than MaxValueLength.
	KindValueTruncated
)

var (
	ErrPathUnavailable = errors.New("settings path unavailable")
	ErrFileUnavailable = errors.New("settings file unavailable")
	ErrKeyAbsent       = errors.New("option absent")
	ErrValueMalformed  = errors.New("option malformed")
	ErrValueTruncated  = errors.New("option value too long")
)

func (k Kind) String() string {
	switch k {
	case KindPathUnavailable:
		return "path_unavailable"
	case KindFileUnavailable:
		return "file_unavailable"
	case KindKeyAbsent:
		return "key_absent"
	case KindValueMalformed:
		return "value_malformed"
	case KindValueTruncated:
		return "value_truncated"
	default:
		return "unknown"
	}
}

func (k Kind) marker() error {
	switch k {
	case KindPathUnavailable:
		return ErrPathUnavailable
	case KindFileUnavailable:
		return ErrFileUnavailable
	case KindKeyAbsent:
		return ErrKeyAbsent
	case KindValueMalformed:
		return ErrValueMalformed
	case KindValueTruncated:
		return ErrValueTruncated
	default:
		return nil
	}
}

// Error reports a failed option read. It matches the Err* sentinel for its
// Kind under errors.Is and also unwraps to the underlying cause.
type Error struct {
	Kind    Kind
	Section string
	Key     string
	// Type is the option type being read ("int", "float", "color3", ...).
	Type string
	Path string
	Err  error
}

func (e *Error) Error() string {
	parts := make([]string, 0, 4)
	if marker := e.Kind.marker(); marker != nil {
		parts = append(parts, marker.Error())
	} else {
		parts = append(parts, "settings error")
	}
	if e.Key != "" {
		name := e.Key
		if e.Section != "" {
			name = e.Section + "." + e.Key
		}
		if e.Type != "" {
			name += " (" + e.Type + ")"
		}
		parts = append(parts, name)
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if marker := e.Kind.marker(); marker != nil {
		errs = append(errs, marker)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind carried by err, or KindUnknown when err is not a
// settings error.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	for _, k := range []Kind{KindPathUnavailable, KindFileUnavailable, KindKeyAbsent, KindValueMalformed, KindValueTruncated} {
		if errors.Is(err, k.marker()) {
			return k
		}
	}
	return KindUnknown
}

// withOption fills in the option coordinates on a settings error produced by
// a lower layer, leaving foreign errors wrapped as file failures.
func withOption(err error, section, key, typ string) *Error {
	var serr *Error
	if errors.As(err, &serr) {
		out := *serr
		if out.Section == "" {
			out.Section = section
		}
		if out.Key == "" {
			out.Key = key
		}
		out.Type = typ
		return &out
	}
	return &Error{Kind: KindFileUnavailable, Section: section, Key: key, Type: typ, Err: fmt.Errorf("lookup: %w", err)}
}
