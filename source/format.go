package source

import (
	"encoding"
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

var ErrUnknownFormat = errors.New("unknown input format (known: json, jsonc, yaml, cbor)")

type Format int

var (
	_ pflag.Value              = (*Format)(nil)
	_ encoding.TextUnmarshaler = (*Format)(nil)
	_ encoding.TextMarshaler   = Format(0)
)

const (
	JSON Format = iota
	JSONC
	YAML
	CBOR
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case JSONC:
		return "jsonc"
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	default:
		// Should not happen.
		panic(ErrUnknownFormat)
	}
}

func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "json":
		*f = JSON
	case "jsonc":
		*f = JSONC
	case "yaml", "yml":
		*f = YAML
	case "cbor":
		*f = CBOR
	default:
		return ErrUnknownFormat
	}
	return nil
}

func (f *Format) Type() string {
	return "Format"
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	var f Format
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return f, ErrUnknownFormat
	}
	return f, f.Set(ext)
}
