package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	bsonbridge "github.com/NethermindEth/bsonbridge/cmd/bsonbridge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

var testGUID = uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func writeGUIDInput(t *testing.T, dir string) string {
	t.Helper()
	return writeFile(t, dir, "guid.yaml", "g: !guid "+testGUID.String()+"\n")
}

func readDoc(t *testing.T, path string) bson.Raw {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := bson.Raw(data)
	require.NoError(t, doc.Validate())
	return doc
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	b := new(bytes.Buffer)
	cmd := bsonbridge.NewCmd()
	cmd.SetOut(b)
	cmd.SetErr(b)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return b.String(), err
}

func TestConvert(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	input := writeFile(t, in, "users.yaml", "name: ada\nage: 36\n")

	output, err := execute(t, "convert", "--output-dir", out, "--summary", "--log-level", "error", "--colour=false", input)
	require.NoError(t, err)
	assert.Contains(t, output, "DOCUMENTS")
	assert.Contains(t, output, "TOTAL")

	doc := readDoc(t, filepath.Join(out, "users.bson"))
	assert.Equal(t, "ada", doc.Lookup("name").StringValue())
	assert.Equal(t, int32(36), doc.Lookup("age").Int32())
}

func TestConvertNeedsFiles(t *testing.T) {
	_, err := execute(t, "convert")
	require.Error(t, err)
}

func TestConfigPrecedence(t *testing.T) {
	tests := map[string]struct {
		cfgFileContents string
		inputArgs       []string
		expectErr       bool
		expectSubtype   byte
	}{
		"default representation is standard": {
			expectSubtype: 0x04,
		},
		"flag": {
			inputArgs:     []string{"--guid-representation", "java-legacy"},
			expectSubtype: 0x03,
		},
		"config file": {
			cfgFileContents: "guid-representation: csharp-legacy\n",
			expectSubtype:   0x03,
		},
		"flag overrides config file": {
			cfgFileContents: "guid-representation: csharp-legacy\n",
			inputArgs:       []string{"--guid-representation", "standard"},
			expectSubtype:   0x04,
		},
		"unknown representation in config file": {
			cfgFileContents: "guid-representation: mystery\n",
			expectErr:       true,
		},
		"unspecified representation rejected": {
			inputArgs: []string{"--guid-representation", "unspecified"},
			expectErr: true,
		},
		"invalid workers in config file": {
			cfgFileContents: "workers: 0\n",
			expectErr:       true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			in := t.TempDir()
			out := t.TempDir()
			input := writeGUIDInput(t, in)

			args := []string{"convert", "--output-dir", out, "--log-level", "error"}
			if test.cfgFileContents != "" {
				args = append(args, "--config", writeFile(t, in, "config.yaml", test.cfgFileContents))
			}
			args = append(args, test.inputArgs...)
			args = append(args, input)

			_, err := execute(t, args...)
			if test.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			subtype, _ := readDoc(t, filepath.Join(out, "guid.bson")).Lookup("g").Binary()
			assert.Equal(t, test.expectSubtype, subtype)
		})
	}
}

func TestConfigFileMissing(t *testing.T) {
	in := t.TempDir()
	input := writeFile(t, in, "a.json", `{}`)

	_, err := execute(t, "convert", "--config", filepath.Join(in, "missing.yaml"), "--output-dir", t.TempDir(), input)
	require.Error(t, err)
}

func TestRewrite(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	input := writeGUIDInput(t, in)

	_, err := execute(t, "convert", "--output-dir", out, "--guid-representation", "csharp-legacy", "--log-level", "error", input)
	require.NoError(t, err)
	legacy := filepath.Join(out, "guid.bson")
	subtype, _ := readDoc(t, legacy).Lookup("g").Binary()
	require.Equal(t, byte(0x03), subtype)

	standard := filepath.Join(out, "standard.bson")
	_, err = execute(t, "rewrite", "--from", "csharp-legacy", "--to", "standard", "--log-level", "error", legacy, standard)
	require.NoError(t, err)

	subtype, data := readDoc(t, standard).Lookup("g").Binary()
	assert.Equal(t, byte(0x04), subtype)
	assert.Equal(t, testGUID[:], data)
}

func TestRewriteArgs(t *testing.T) {
	_, err := execute(t, "rewrite", "only-one.bson")
	require.Error(t, err)
}
