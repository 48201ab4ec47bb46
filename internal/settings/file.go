package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/go-ini/ini"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Section is the only section the plugin reads.
const Section = "Settings"

// MaxValueLength is the longest raw value accepted, counted as stored on
// disk: bytes in UTF-8 files, characters in Windows-1252 and UTF-16 files.
// Longer values fail with KindValueTruncated instead of being cut short.
const MaxValueLength = 255

// Lookup returns the raw string stored under section/key. Implementations
// report failures as *Error values of kind PathUnavailable, FileUnavailable,
// KeyAbsent or ValueTruncated.
type Lookup interface {
	Lookup(section, key string) (string, error)
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// File is a settings file on disk. The file is read and parsed on the first
// Lookup and the result, including a failure, is reused afterwards, so one
// File is a consistent snapshot for a single load pass.
type File struct {
	path string

	once    sync.Once
	parsed  *ini.File
	measure func(string) int
	loadErr error
}

// NewFile returns a File for path. An empty path yields PathUnavailable on
// every lookup.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// Lookup implements Lookup against the parsed file. Section and key names
// match case-insensitively.
func (f *File) Lookup(section, key string) (string, error) {
	parsed, err := f.load()
	if err != nil {
		return "", err
	}

	sec, err := parsed.GetSection(section)
	if err != nil {
		return "", &Error{Kind: KindKeyAbsent, Section: section, Key: key, Path: f.path, Err: fmt.Errorf("section [%s] not found", section)}
	}
	if !sec.HasKey(key) {
		return "", &Error{Kind: KindKeyAbsent, Section: section, Key: key, Path: f.path}
	}
	// The first occurrence of a repeated key wins.
	value := sec.Key(key).Value()
	if value == "" {
		return "", &Error{Kind: KindKeyAbsent, Section: section, Key: key, Path: f.path, Err: errors.New("value is empty")}
	}
	if n := f.measure(value); n > MaxValueLength {
		return "", &Error{
			Kind:    KindValueTruncated,
			Section: section,
			Key:     key,
			Path:    f.path,
			Err:     fmt.Errorf("value is %d long, limit is %d", n, MaxValueLength),
		}
	}
	return value, nil
}

func (f *File) load() (*ini.File, error) {
	f.once.Do(func() {
		if f.path == "" {
			f.loadErr = &Error{Kind: KindPathUnavailable, Err: errors.New("no settings path")}
			return
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			f.loadErr = &Error{Kind: KindFileUnavailable, Path: f.path, Err: err}
			return
		}
		text, measure, err := decodeText(data)
		if err != nil {
			f.loadErr = &Error{Kind: KindFileUnavailable, Path: f.path, Err: fmt.Errorf("decode: %w", err)}
			return
		}
		parsed, err := Parse(text)
		if err != nil {
			f.loadErr = &Error{Kind: KindFileUnavailable, Path: f.path, Err: err}
			return
		}
		f.parsed = parsed
		f.measure = measure
	})
	return f.parsed, f.loadErr
}

// Parse reads INI text the way the game's profile API does: names match
// case-insensitively, only '=' separates a key from its value, there are no
// inline comments or continuation lines, unrecognised lines are ignored and
// the first occurrence of a repeated key wins. go-ini always treats values
// opening with a backtick or """ as quoted, which the profile API does not.
func Parse(text []byte) (*ini.File, error) {
	parsed, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveSections:     true,
		InsensitiveKeys:         true,
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		SkipUnrecognizableLines: true,
		AllowShadows:            true,
		KeyValueDelimiters:      "=",
	}, text)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}
	return parsed, nil
}

// decodeText converts the file to UTF-8. Files with a byte order mark are
// decoded per the mark; files without one are taken as UTF-8 when valid and
// as Windows-1252 otherwise.
//
// The returned measure reports a decoded value's length in the units the
// profile API buffer counts: bytes for UTF-8 files, characters for
// Windows-1252 (one byte each on disk) and UTF-16 files.
func decodeText(data []byte) ([]byte, func(string) int, error) {
	byteLen := func(s string) int { return len(s) }
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		return out, byteLen, err
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		return out, utf8.RuneCountInString, err
	case utf8.Valid(data):
		return data, byteLen, nil
	default:
		out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		return out, utf8.RuneCountInString, err
	}
}
