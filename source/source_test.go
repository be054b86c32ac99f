package source_test

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/NethermindEth/bsonbridge/adapter"
	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/encoder"
	"github.com/NethermindEth/bsonbridge/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// convert runs every document of in through an adapter and returns the
// resulting BSON documents.
func convert(t *testing.T, format source.Format, in io.Reader) []bson.Raw {
	t.Helper()

	src, err := source.New(format, in)
	require.NoError(t, err)

	var buf bytes.Buffer
	sw := bsonw.NewStreamWriter(&buf, bsonw.DefaultSettings())
	a := adapter.New(sw, adapter.WithCloseOutput(true))
	for {
		err = src.Next(a)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
	require.NoError(t, a.Close())

	var docs []bson.Raw
	data := buf.Bytes()
	for len(data) > 0 {
		doc, rem, ok := bsoncore.ReadDocument(data)
		require.True(t, ok)
		docs = append(docs, bson.Raw(doc))
		data = rem
	}
	return docs
}

func TestFormat(t *testing.T) {
	for _, f := range []source.Format{source.JSON, source.JSONC, source.YAML, source.CBOR} {
		t.Run(f.String(), func(t *testing.T) {
			text, err := f.MarshalText()
			require.NoError(t, err)

			var got source.Format
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, f, got)

			require.NoError(t, got.Set(strings.ToUpper(f.String())))
			assert.Equal(t, f, got)
		})
	}

	var f source.Format
	require.ErrorIs(t, f.Set("xml"), source.ErrUnknownFormat)
	assert.Equal(t, "Format", f.Type())
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]source.Format{
		"a/b.json":   source.JSON,
		"c.jsonc":    source.JSONC,
		"d.yml":      source.YAML,
		"e.YAML":     source.YAML,
		"f.cbor":     source.CBOR,
		"dir/g.JSON": source.JSON,
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			got, err := source.FormatFromPath(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := source.FormatFromPath("noext")
	require.ErrorIs(t, err, source.ErrUnknownFormat)
	_, err = source.FormatFromPath("x.txt")
	require.ErrorIs(t, err, source.ErrUnknownFormat)
}

func TestJSON(t *testing.T) {
	in := `{"a": 1, "big": 8589934592, "f": 1.5, "s": "x", "n": null, "arr": [true, {"k": "v"}]}
{"second": false}`

	docs := convert(t, source.JSON, strings.NewReader(in))
	require.Len(t, docs, 2)

	doc := docs[0]
	assert.Equal(t, int32(1), doc.Lookup("a").Int32())
	assert.Equal(t, int64(8589934592), doc.Lookup("big").Int64())
	assert.Equal(t, 1.5, doc.Lookup("f").Double())
	assert.Equal(t, "x", doc.Lookup("s").StringValue())
	assert.Equal(t, bson.TypeNull, doc.Lookup("n").Type)
	assert.True(t, doc.Lookup("arr", "0").Boolean())
	assert.Equal(t, "v", doc.Lookup("arr", "1", "k").StringValue())

	elements, err := doc.Elements()
	require.NoError(t, err)
	keys := make([]string, 0, len(elements))
	for _, e := range elements {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []string{"a", "big", "f", "s", "n", "arr"}, keys)

	assert.False(t, docs[1].Lookup("second").Boolean())
}

func TestJSONNotDocument(t *testing.T) {
	src, err := source.New(source.JSON, strings.NewReader(`[1, 2]`))
	require.NoError(t, err)

	sw := bsonw.NewStreamWriter(io.Discard, bsonw.DefaultSettings())
	require.ErrorIs(t, src.Next(adapter.New(sw)), source.ErrNotDocument)
}

func TestJSONC(t *testing.T) {
	in := `{
		// line comment
		"a": 1, /* block */
		"b": [1, 2,],
	}`

	docs := convert(t, source.JSONC, strings.NewReader(in))
	require.Len(t, docs, 1)
	assert.Equal(t, int32(1), docs[0].Lookup("a").Int32())
	assert.Equal(t, int32(2), docs[0].Lookup("b", "1").Int32())
}

func TestJSONTruncated(t *testing.T) {
	tests := map[string]struct {
		format source.Format
		in     string
		// complete is the number of documents read before the error.
		complete int
	}{
		"open object":            {format: source.JSON, in: `{"a": 1`},
		"missing value":          {format: source.JSON, in: `{"a":`},
		"open string":            {format: source.JSON, in: `{"a": "x`},
		"open array after a doc": {format: source.JSON, in: `{"a": 1}{"b": [1, 2`, complete: 1},
		"jsonc":                  {format: source.JSONC, in: "{\n// c\n\"a\": [1,", complete: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			src, err := source.New(test.format, strings.NewReader(test.in))
			require.NoError(t, err)

			sw := bsonw.NewStreamWriter(io.Discard, bsonw.DefaultSettings())
			a := adapter.New(sw)
			for range test.complete {
				require.NoError(t, src.Next(a))
			}
			err = src.Next(a)
			require.ErrorIs(t, err, io.ErrUnexpectedEOF)
			assert.NotErrorIs(t, err, io.EOF)
			assert.Equal(t, test.complete, sw.Documents())
		})
	}
}

func TestJSONNumberOutOfRange(t *testing.T) {
	src, err := source.New(source.JSON, strings.NewReader(`{"f": 1e400}`))
	require.NoError(t, err)

	sw := bsonw.NewStreamWriter(io.Discard, bsonw.DefaultSettings())
	require.ErrorIs(t, src.Next(adapter.New(sw)), strconv.ErrRange)
}

func TestYAML(t *testing.T) {
	in := `z: 1
a: 5000000000
f: 2.25
yes: true
nothing: ~
when: 2001-12-14T21:59:43Z
blob: !!binary aGVsbG8=
quoted: "42"
list:
  - one
  - nested: &anchor
      k: v
again: *anchor
---
second: doc
`

	docs := convert(t, source.YAML, strings.NewReader(in))
	require.Len(t, docs, 2)

	doc := docs[0]
	elements, err := doc.Elements()
	require.NoError(t, err)
	assert.Equal(t, "z", elements[0].Key(), "mapping order is kept")

	assert.Equal(t, int32(1), doc.Lookup("z").Int32())
	assert.Equal(t, int64(5000000000), doc.Lookup("a").Int64())
	assert.Equal(t, 2.25, doc.Lookup("f").Double())
	assert.True(t, doc.Lookup("yes").Boolean())
	assert.Equal(t, bson.TypeNull, doc.Lookup("nothing").Type)
	assert.Equal(t, time.Date(2001, 12, 14, 21, 59, 43, 0, time.UTC).UnixMilli(), doc.Lookup("when").DateTime())

	subtype, data := doc.Lookup("blob").Binary()
	assert.Equal(t, byte(0), subtype)
	assert.Equal(t, []byte("hello"), data)

	assert.Equal(t, "42", doc.Lookup("quoted").StringValue())
	assert.Equal(t, "one", doc.Lookup("list", "0").StringValue())
	assert.Equal(t, "v", doc.Lookup("list", "1", "nested", "k").StringValue())
	assert.Equal(t, "v", doc.Lookup("again", "k").StringValue())

	assert.Equal(t, "doc", docs[1].Lookup("second").StringValue())
}

func TestYAMLNotDocument(t *testing.T) {
	src, err := source.New(source.YAML, strings.NewReader("- a\n- b\n"))
	require.NoError(t, err)

	sw := bsonw.NewStreamWriter(io.Discard, bsonw.DefaultSettings())
	require.ErrorIs(t, src.Next(adapter.New(sw)), source.ErrNotDocument)
}

func TestCBOR(t *testing.T) {
	id := primitive.ObjectID{0x65, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b}

	var in bytes.Buffer
	enc := encoder.NewEncoder(&in)
	require.NoError(t, enc.Encode(map[string]any{
		"_id":   id,
		"small": 3,
		"large": int64(1) << 40,
		"bytes": []byte{1, 2},
		"list":  []any{"a", 1.5},
	}))
	require.NoError(t, enc.Encode(map[string]any{"n": nil}))

	docs := convert(t, source.CBOR, &in)
	require.Len(t, docs, 2)

	doc := docs[0]
	assert.Equal(t, id, doc.Lookup("_id").ObjectID())
	assert.Equal(t, int32(3), doc.Lookup("small").Int32())
	assert.Equal(t, int64(1)<<40, doc.Lookup("large").Int64())
	_, data := doc.Lookup("bytes").Binary()
	assert.Equal(t, []byte{1, 2}, data)
	assert.Equal(t, "a", doc.Lookup("list", "0").StringValue())
	assert.Equal(t, 1.5, doc.Lookup("list", "1").Double())

	assert.Equal(t, bson.TypeNull, docs[1].Lookup("n").Type)
}

func TestCBORNotDocument(t *testing.T) {
	b, err := encoder.Marshal([]int{1})
	require.NoError(t, err)

	src, err := source.New(source.CBOR, bytes.NewReader(b))
	require.NoError(t, err)

	sw := bsonw.NewStreamWriter(io.Discard, bsonw.DefaultSettings())
	require.ErrorIs(t, src.Next(adapter.New(sw)), source.ErrNotDocument)
}

func TestUnknownFormat(t *testing.T) {
	_, err := source.New(source.Format(42), strings.NewReader(""))
	require.ErrorIs(t, err, source.ErrUnknownFormat)
}

func TestYAMLIdentifierTags(t *testing.T) {
	in := `g: !guid 00112233-4455-6677-8899-aabbccddeeff
id: !objectid 650102030405060708090a0b
`
	docs := convert(t, source.YAML, strings.NewReader(in))
	require.Len(t, docs, 1)

	subtype, data := docs[0].Lookup("g").Binary()
	assert.Equal(t, byte(0x04), subtype)
	assert.Equal(t, []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, data)

	id, err := primitive.ObjectIDFromHex("650102030405060708090a0b")
	require.NoError(t, err)
	assert.Equal(t, id, docs[0].Lookup("id").ObjectID())

	src, err := source.New(source.YAML, strings.NewReader("g: !guid nope\n"))
	require.NoError(t, err)
	sw := bsonw.NewStreamWriter(io.Discard, bsonw.DefaultSettings())
	require.Error(t, src.Next(adapter.New(sw)))
}
