package convert_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/convert"
	"github.com/NethermindEth/bsonbridge/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newConfig(t *testing.T) *convert.Config {
	t.Helper()
	return &convert.Config{
		LogLevel:           utils.INFO,
		OutputDir:          t.TempDir(),
		GUIDRepresentation: bsonw.Standard,
		Workers:            2,
		MaxDocumentSize:    bsonw.DefaultMaxDocumentSize,
	}
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func readDocs(t *testing.T, path string) []bson.Raw {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var docs []bson.Raw
	for {
		doc, err := bson.NewFromIOReader(f)
		if err != nil {
			break
		}
		docs = append(docs, doc)
	}
	return docs
}

func TestConfigValidate(t *testing.T) {
	cfg := newConfig(t)
	require.NoError(t, cfg.Validate())

	cfg.GUIDRepresentation = bsonw.Unspecified
	require.Error(t, cfg.Validate())

	cfg = newConfig(t)
	cfg.InputFormat = "xml"
	require.Error(t, cfg.Validate())

	cfg = newConfig(t)
	cfg.Workers = 0
	require.Error(t, cfg.Validate())

	rcfg := &convert.RewriteConfig{From: bsonw.CSharpLegacy, To: bsonw.Standard, MaxDocumentSize: 100}
	require.NoError(t, rcfg.Validate())
	rcfg.To = bsonw.Unspecified
	require.Error(t, rcfg.Validate())
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "users.bson"), convert.OutputPath("out", filepath.Join("in", "users.json")))
	assert.Equal(t, filepath.Join("out", "noext.bson"), convert.OutputPath("out", "noext"))
}

func TestFiles(t *testing.T) {
	in := t.TempDir()
	inputs := []string{
		writeFile(t, in, "a.json", `{"x": 1} {"x": 2}`),
		writeFile(t, in, "b.yaml", "name: b\n---\nname: c\n---\nname: d\n"),
		writeFile(t, in, "c.jsonc", `{"y": [1, 2,], /* c */}`),
	}

	cfg := newConfig(t)
	results, err := convert.Files(context.Background(), cfg, inputs, utils.NewNopLogger())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, want := range []int{2, 3, 1} {
		assert.Equal(t, inputs[i], results[i].Input)
		assert.Equal(t, want, results[i].Documents)

		info, err := os.Stat(results[i].Output)
		require.NoError(t, err)
		assert.Equal(t, info.Size(), results[i].Bytes)
		assert.Len(t, readDocs(t, results[i].Output), want)
	}

	docs := readDocs(t, results[1].Output)
	assert.Equal(t, "d", docs[2].Lookup("name").StringValue())
}

func TestFilesInputFormatOverride(t *testing.T) {
	in := t.TempDir()
	input := writeFile(t, in, "data.txt", "k: v\n")

	cfg := newConfig(t)
	_, err := convert.Files(context.Background(), cfg, []string{input}, utils.NewNopLogger())
	require.Error(t, err)

	cfg.InputFormat = "yaml"
	results, err := convert.Files(context.Background(), cfg, []string{input}, utils.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, results[0].Documents)
}

func TestFileReportsPath(t *testing.T) {
	in := t.TempDir()
	input := writeFile(t, in, "bad.json", `{"a": {"b": [1, 2}}`)

	_, err := convert.File(context.Background(), newConfig(t), input, utils.NewNopLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document 1")
}

func TestFileCancelled(t *testing.T) {
	in := t.TempDir()
	input := writeFile(t, in, "a.json", `{"x": 1}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := convert.File(ctx, newConfig(t), input, utils.NewNopLogger())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRewrite(t *testing.T) {
	g := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	legacy, err := bsonw.GUIDToBytes(g, bsonw.CSharpLegacy)
	require.NoError(t, err)

	legacyDoc, err := bson.Marshal(bson.D{
		{Key: "g", Value: primitive.Binary{Subtype: 0x03, Data: legacy}},
		{Key: "n", Value: int32(1)},
	})
	require.NoError(t, err)
	in := filepath.Join(t.TempDir(), "legacy.bson")
	require.NoError(t, os.WriteFile(in, append(legacyDoc, legacyDoc...), 0o600))

	out := filepath.Join(t.TempDir(), "standard.bson")
	cfg := &convert.RewriteConfig{From: bsonw.CSharpLegacy, To: bsonw.Standard, MaxDocumentSize: bsonw.DefaultMaxDocumentSize}
	result, err := convert.Rewrite(context.Background(), cfg, in, out, utils.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Documents)

	docs := readDocs(t, out)
	require.Len(t, docs, 2)
	subtype, data := docs[0].Lookup("g").Binary()
	assert.Equal(t, byte(0x04), subtype)
	assert.Equal(t, g[:], data)
	assert.Equal(t, int32(1), docs[1].Lookup("n").Int32())
}

func TestRewriteTruncated(t *testing.T) {
	doc, err := bson.Marshal(bson.M{"a": int32(1)})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cut.bson")
	require.NoError(t, os.WriteFile(path, doc[:len(doc)-2], 0o600))

	cfg := &convert.RewriteConfig{From: bsonw.Standard, To: bsonw.Standard, MaxDocumentSize: bsonw.DefaultMaxDocumentSize}
	_, err = convert.Rewrite(context.Background(), cfg, path, filepath.Join(t.TempDir(), "out.bson"), utils.NewNopLogger())
	require.Error(t, err)
}

func TestFileTruncated(t *testing.T) {
	cfg := newConfig(t)
	input := writeFile(t, t.TempDir(), "cut.json", `{"a": 1}{"b": [1, 2`)

	_, err := convert.File(context.Background(), cfg, input, utils.NewNopLogger())
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "document 2")

	_, err = convert.Files(context.Background(), cfg, []string{input}, utils.NewNopLogger())
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
