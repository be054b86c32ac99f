package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/NethermindEth/bsonbridge/token"
)

type jsonSource struct {
	dec *json.Decoder
}

func newJSONSource(r io.Reader) *jsonSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec}
}

func (s *jsonSource) Next(w token.Writer) error {
	tok, err := s.dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: found %v", ErrNotDocument, tok)
	}
	return s.object(w)
}

func (s *jsonSource) value(w token.Writer, tok json.Token) error {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return s.object(w)
		case '[':
			return s.array(w)
		default:
			return fmt.Errorf("unexpected %v", v)
		}
	case nil:
		return w.WriteNull()
	case bool:
		return w.WriteValue(token.Bool(v))
	case string:
		return w.WriteValue(token.String(v))
	case json.Number:
		n, err := number(v)
		if err != nil {
			return err
		}
		return w.WriteValue(n)
	default:
		return fmt.Errorf("unexpected JSON token %T", tok)
	}
}

func (s *jsonSource) object(w token.Writer) error {
	if err := w.WriteStartObject(); err != nil {
		return err
	}
	for s.dec.More() {
		tok, err := s.token()
		if err != nil {
			return err
		}
		if err = w.WritePropertyName(tok.(string)); err != nil {
			return err
		}
		if tok, err = s.token(); err != nil {
			return err
		}
		if err = s.value(w, tok); err != nil {
			return err
		}
	}
	// Closing brace.
	if _, err := s.token(); err != nil {
		return err
	}
	return w.WriteEndObject()
}

func (s *jsonSource) array(w token.Writer) error {
	if err := w.WriteStartArray(); err != nil {
		return err
	}
	for s.dec.More() {
		tok, err := s.token()
		if err != nil {
			return err
		}
		if err = s.value(w, tok); err != nil {
			return err
		}
	}
	if _, err := s.token(); err != nil {
		return err
	}
	return w.WriteEndArray()
}

// token reads the next token inside a document, where running out of input
// means the document was cut short.
func (s *jsonSource) token() (json.Token, error) {
	tok, err := s.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

// number picks the narrowest of int32, int64 and float64 that holds n.
// Numbers beyond the float64 range are rejected.
func number(n json.Number) (token.Value, error) {
	if i, err := n.Int64(); err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return token.Int32(int32(i)), nil
		}
		return token.Int64(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return token.Value{}, fmt.Errorf("number %s: %w", n, err)
	}
	return token.Float64(f), nil
}
