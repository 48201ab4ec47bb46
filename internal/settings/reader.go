package settings

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"collviz/internal/logging"
)

// Reader reads typed options from one section of a Lookup.
type Reader struct {
	src     Lookup
	section string
	logger  *slog.Logger
}

// NewReader binds a Reader to the [Settings] section of src.
func NewReader(src Lookup, logger *slog.Logger) *Reader {
	return &Reader{
		src:     src,
		section: Section,
		logger:  logging.NewComponentLogger(logger, "settings"),
	}
}

// WithLogger returns a copy of the reader logging through logger.
func (r *Reader) WithLogger(logger *slog.Logger) *Reader {
	clone := *r
	clone.logger = logger
	return &clone
}

// Raw returns the unparsed value stored under key. Absent and empty values
// both fail with KindKeyAbsent.
func (r *Reader) Raw(key string) (string, error) {
	value, err := r.src.Lookup(r.section, key)
	if err != nil {
		return "", withOption(err, r.section, key, "string")
	}
	return value, nil
}

// String reads a string option.
func (r *Reader) String(key string) (string, error) {
	value, err := r.Raw(key)
	if err != nil {
		return "", r.fail(err, key, "string")
	}
	return value, nil
}

// Int reads a base-10 integer within the 32-bit range.
func (r *Reader) Int(key string) (int, error) {
	value, err := r.scalar(key, "int", func(s string) (any, error) {
		return strconv.ParseInt(s, 10, 32)
	})
	if err != nil {
		return 0, err
	}
	return int(value.(int64)), nil
}

// Float reads a single-precision float.
func (r *Reader) Float(key string) (float32, error) {
	value, err := r.scalar(key, "float", func(s string) (any, error) {
		return strconv.ParseFloat(s, 32)
	})
	if err != nil {
		return 0, err
	}
	return float32(value.(float64)), nil
}

// Double reads a double-precision float.
func (r *Reader) Double(key string) (float64, error) {
	value, err := r.scalar(key, "double", func(s string) (any, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return 0, err
	}
	return value.(float64), nil
}

// Bool reads an integer flag: 1 is true, 0 is false and anything else fails
// with KindValueMalformed.
func (r *Reader) Bool(key string) (bool, error) {
	value, err := r.scalar(key, "bool", func(s string) (any, error) {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, err
		}
		switch n {
		case 1:
			return true, nil
		case 0:
			return false, nil
		default:
			return nil, fmt.Errorf("flag must be 0 or 1, got %d", n)
		}
	})
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}

// Vector3 reads <name>X, <name>Y and <name>Z in that order, stopping at the
// first component that fails.
func (r *Reader) Vector3(name string) (Vector3, error) {
	var v Vector3
	for _, c := range []struct {
		suffix string
		dst    *float32
	}{{"X", &v.X}, {"Y", &v.Y}, {"Z", &v.Z}} {
		f, err := r.Float(name + c.suffix)
		if err != nil {
			return Vector3{}, err
		}
		*c.dst = f
	}
	return v, nil
}

// Color3 reads <name>R, <name>G and <name>B in that order, stopping at the
// first component that fails.
func (r *Reader) Color3(name string) (Color3, error) {
	var c Color3
	for _, ch := range []struct {
		suffix string
		dst    *float32
	}{{"R", &c.R}, {"G", &c.G}, {"B", &c.B}} {
		f, err := r.Float(name + ch.suffix)
		if err != nil {
			return Color3{}, err
		}
		*ch.dst = f
	}
	return c, nil
}

func (r *Reader) scalar(key, typ string, parse func(string) (any, error)) (any, error) {
	raw, err := r.Raw(key)
	if err != nil {
		return nil, r.fail(err, key, typ)
	}
	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, r.fail(&Error{Kind: KindValueMalformed, Section: r.section, Key: key, Err: fmt.Errorf("parse %q: %w", raw, err)}, key, typ)
	}
	return value, nil
}

func (r *Reader) fail(err error, key, typ string) error {
	serr := withOption(err, r.section, key, typ)
	r.logger.Warn(fmt.Sprintf("failed to read %s config option", typ),
		logging.String(logging.FieldEventType, "settings.option_failed"),
		logging.String(logging.FieldOption, key),
		logging.String(logging.FieldKind, serr.Kind.String()),
		logging.Error(serr),
	)
	return serr
}
