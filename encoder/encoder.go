// Package encoder holds the CBOR modes used to read and write CBOR input.
// Types registered with RegisterType travel as tagged items and decode back
// to the registered type, including into an empty interface.
package encoder

import (
	"io"
	"reflect"
	"sync"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ts = cbor.NewTagSet()
	// https://www.iana.org/assignments/cbor-tags/cbor-tags.xhtml
	// 65536-15309735 	Unassigned
	tagNum  uint64 = 65536
	encMode cbor.EncMode
	decMode cbor.DecMode
	mu      sync.Mutex
)

var initialiseEncoder sync.Once

func initEncAndDecModes() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncModeWithTags(ts)
	if err != nil {
		panic(err)
	}

	decMode, err = cbor.DecOptions{
		MaxArrayElements: 10485760, // Set to a reasonably high value, 10MiB
		// Documents are keyed by strings.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		IntDec:         cbor.IntDecConvertSigned,
	}.DecModeWithTags(ts)
	if err != nil {
		panic(err)
	}
}

// RegisterType assigns the next free tag number to rType. Registration
// order fixes the tag numbers, so it must not change between releases.
func RegisterType(rType reflect.Type) error {
	mu.Lock()
	defer mu.Unlock()
	if err := ts.Add(
		cbor.TagOptions{EncTag: cbor.EncTagRequired, DecTag: cbor.DecTagRequired},
		rType,
		tagNum,
	); err != nil {
		return err
	}
	initEncAndDecModes()
	tagNum++
	return nil
}

// Marshal returns encoding of param v
func Marshal(v any) ([]byte, error) {
	initialiseEncoder.Do(initEncAndDecModes)
	return encMode.Marshal(v)
}

// Unmarshal decodes param v from []byte b
func Unmarshal(b []byte, v any) error {
	initialiseEncoder.Do(initEncAndDecModes)
	return decMode.Unmarshal(b, v)
}

// TestSymmetry checks if a type can be marshalled and unmarshalled with no issues
func TestSymmetry(t *testing.T, value any) {
	t.Helper()
	cborBytes, err := Marshal(value)
	require.NoError(t, err)

	unmarshaled := reflect.New(reflect.TypeOf(value))
	err = Unmarshal(cborBytes, unmarshaled.Interface())
	require.NoError(t, err)
	assert.Equal(t, value, unmarshaled.Elem().Interface())
}

type Encoder interface {
	Encode(v any) error
}

// NewEncoder returns a new encoder that writes to w
func NewEncoder(w io.Writer) Encoder {
	initialiseEncoder.Do(initEncAndDecModes)
	return encMode.NewEncoder(w)
}

type Decoder interface {
	Decode(v any) error
}

// NewDecoder returns a new decoder that reads from r
func NewDecoder(r io.Reader) Decoder {
	initialiseEncoder.Do(initEncAndDecModes)
	return decMode.NewDecoder(r)
}
