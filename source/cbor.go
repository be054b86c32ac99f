package source

import (
	"fmt"
	"io"

	"github.com/NethermindEth/bsonbridge/converters"
	"github.com/NethermindEth/bsonbridge/encoder"
	_ "github.com/NethermindEth/bsonbridge/encoder/registry"
	"github.com/NethermindEth/bsonbridge/token"
)

type cborSource struct {
	dec encoder.Decoder
}

func newCBORSource(r io.Reader) *cborSource {
	return &cborSource{dec: encoder.NewDecoder(r)}
}

// Next decodes the next CBOR data item, which must be a map, and writes it
// through a token.Encoder. Maps are written with sorted keys.
func (s *cborSource) Next(w token.Writer) error {
	var v any
	if err := s.dec.Decode(&v); err != nil {
		return err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: found %T", ErrNotDocument, v)
	}
	return token.NewEncoder(w, converters.Default()...).Encode(narrow(doc))
}

// narrow turns decoded int64 values into int so that the encoder writes
// those that fit as int32.
func narrow(v any) any {
	switch x := v.(type) {
	case int64:
		return int(x)
	case map[string]any:
		for k, e := range x {
			x[k] = narrow(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = narrow(e)
		}
		return x
	default:
		return v
	}
}
