package source

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/NethermindEth/bsonbridge/converters"
	"github.com/NethermindEth/bsonbridge/token"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type yamlSource struct {
	dec *yaml.Decoder
}

func newYAMLSource(r io.Reader) *yamlSource {
	return &yamlSource{dec: yaml.NewDecoder(r)}
}

// Next writes the next YAML document. Mapping order is preserved. Besides
// the core schema tags, !guid and !objectid mark GUIDs and ObjectIDs given
// in their usual text forms.
func (s *yamlSource) Next(w token.Writer) error {
	var doc yaml.Node
	if err := s.dec.Decode(&doc); err != nil {
		return err
	}
	n := &doc
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d", ErrNotDocument, n.Line)
	}
	return s.node(w, n)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func (s *yamlSource) node(w token.Writer, n *yaml.Node) error {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.MappingNode:
		if err := w.WriteStartObject(); err != nil {
			return err
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			if err := w.WritePropertyName(resolveAlias(n.Content[i]).Value); err != nil {
				return err
			}
			if err := s.node(w, n.Content[i+1]); err != nil {
				return err
			}
		}
		return w.WriteEndObject()
	case yaml.SequenceNode:
		if err := w.WriteStartArray(); err != nil {
			return err
		}
		for _, item := range n.Content {
			if err := s.node(w, item); err != nil {
				return err
			}
		}
		return w.WriteEndArray()
	case yaml.ScalarNode:
		return scalar(w, n)
	default:
		return fmt.Errorf("line %d: unexpected YAML node kind %d", n.Line, n.Kind)
	}
}

func scalar(w token.Writer, n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!null":
		return w.WriteNull()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		return w.WriteValue(token.Bool(b))
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Out of int64 range.
			var f float64
			if ferr := n.Decode(&f); ferr != nil {
				return err
			}
			return w.WriteValue(token.Float64(f))
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return w.WriteValue(token.Int32(int32(i)))
		}
		return w.WriteValue(token.Int64(i))
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		return w.WriteValue(token.Float64(f))
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return err
		}
		return w.WriteValue(token.Time(t))
	case "!guid":
		g, err := uuid.Parse(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		return w.WriteValue(token.GUID(g))
	case "!objectid":
		id, err := converters.ObjectIDConverter.ReadValue(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		return converters.ObjectIDConverter.WriteValue(w, id, nil)
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		return w.WriteValue(token.Bytes(b))
	default:
		return w.WriteValue(token.String(n.Value))
	}
}
