// Package source reads documents in common text and binary formats and
// replays them, one top-level document at a time, into a token.Writer.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/NethermindEth/bsonbridge/token"
	"github.com/tidwall/jsonc"
)

var ErrNotDocument = errors.New("top-level value is not a document")

// Source yields the documents of one input.
type Source interface {
	// Next writes the next document to w. It returns io.EOF once the input
	// is exhausted.
	Next(w token.Writer) error
}

func New(format Format, r io.Reader) (Source, error) {
	switch format {
	case JSON:
		return newJSONSource(r), nil
	case JSONC:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return newJSONSource(bytes.NewReader(jsonc.ToJSON(data))), nil
	case YAML:
		return newYAMLSource(r), nil
	case CBOR:
		return newCBORSource(r), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
}
